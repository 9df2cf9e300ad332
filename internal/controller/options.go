package controller

import (
	"fmt"
	"time"
)

// DirectionMode selects how swipe direction maps to navigation.
type DirectionMode string

const (
	// Navigate sends leftward swipes to the next card and rightward swipes to the previous one.
	Navigate DirectionMode = "navigate"
	// Dismiss advances on a swipe in either direction.
	Dismiss DirectionMode = "dismiss"
)

// Options are the tunables of the controller. Distances are in viewport units.
type Options struct {
	ViewportWidth           float64
	Threshold               float64
	ExitMargin              float64
	CommitDuration          time.Duration
	TapEpsilon              float64
	Direction               DirectionMode
	AutoCompleteOnLastSwipe bool
}

func DefaultOptions() Options {
	return Options{
		ViewportWidth:  400,
		Threshold:      120,
		ExitMargin:     40,
		CommitDuration: 250 * time.Millisecond,
		TapEpsilon:     5,
		Direction:      Navigate,
	}
}

func (o Options) Validate() error {
	if o.ViewportWidth <= 0 {
		return fmt.Errorf("viewport width must be positive, got %v", o.ViewportWidth)
	}
	if o.Threshold <= 0 || o.Threshold >= o.ViewportWidth {
		return fmt.Errorf("threshold must be in (0, %v), got %v", o.ViewportWidth, o.Threshold)
	}
	if o.ExitMargin < 0 {
		return fmt.Errorf("exit margin must not be negative, got %v", o.ExitMargin)
	}
	if o.CommitDuration < 0 {
		return fmt.Errorf("commit duration must not be negative, got %v", o.CommitDuration)
	}
	if o.TapEpsilon < 0 {
		return fmt.Errorf("tap epsilon must not be negative, got %v", o.TapEpsilon)
	}
	switch o.Direction {
	case Navigate, Dismiss:
	default:
		return fmt.Errorf("unknown direction mode %q", o.Direction)
	}
	return nil
}
