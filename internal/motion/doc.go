// Package motion implements animatable values stepped by a frame clock.
//
// A Value is a 2-D position that can be set directly or animated towards a
// target with a timed (eased) or spring transition. Completion callbacks are
// only ever delivered from Engine.Step, never from inside Set or AnimateTo,
// so callers on a single event loop see them as asynchronous events. Each
// callback fires exactly once: with finished=true when the value reaches its
// target, or finished=false when a later Set or AnimateTo replaced it.
package motion
