package motion

import "time"

type Mode int

const (
	// Timed moves along an ease-out curve and finishes after Duration.
	Timed Mode = iota
	// Spring follows a damped spring until it settles on the target.
	Spring
)

func (m Mode) String() string {
	switch m {
	case Timed:
		return "timed"
	case Spring:
		return "spring"
	default:
		return "unknown"
	}
}

const (
	DefaultSpringFrequency = 8.0
	DefaultSpringDamping   = 0.8
)

// Transition describes how a value travels to its target.
type Transition struct {
	Mode      Mode
	Duration  time.Duration
	Frequency float64
	Damping   float64
}

func TimedTransition(d time.Duration) Transition {
	return Transition{Mode: Timed, Duration: d}
}

func SpringTransition() Transition {
	return Transition{Mode: Spring, Frequency: DefaultSpringFrequency, Damping: DefaultSpringDamping}
}

// DoneFunc receives the outcome of an animation.
type DoneFunc func(finished bool)

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
