// Package controller holds the swipe/flip interaction state machine for a
// single active card.
//
// The controller owns the deck session and two motion tracks: the swipe
// offset and the flip value. Gesture callbacks and animation completions
// arrive on one event loop. Every completion is tagged with a generation
// token and the phase it expects, and is dropped when either has moved on.
// Calls made in a phase that does not accept them are ignored.
package controller
