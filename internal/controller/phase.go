package controller

// Phase is the interaction state of the active card.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Committing
	SpringingBack
	Flipping
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committing:
		return "committing"
	case SpringingBack:
		return "springing_back"
	case Flipping:
		return "flipping"
	default:
		return "unknown"
	}
}

// Direction is the horizontal sense of a commit.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// sign of the off-screen exit position
func (d Direction) sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}
