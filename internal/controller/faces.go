package controller

import "github.com/jask/cardswipe/internal/motion"

var (
	frontRotation = motion.Range{In: [2]float64{0, 1}, Out: [2]float64{0, 180}}
	backRotation  = motion.Range{In: [2]float64{0, 1}, Out: [2]float64{180, 360}}
	frontOpacity  = motion.Range{In: [2]float64{0.5, 1}, Out: [2]float64{1, 0}, Clamp: true}
	backOpacity   = motion.Range{In: [2]float64{0, 0.5}, Out: [2]float64{0, 1}, Clamp: true}
)

// Faces is the derived presentation of both card faces for a flip value.
// Rotations are in degrees.
type Faces struct {
	FrontRotation float64
	BackRotation  float64
	FrontOpacity  float64
	BackOpacity   float64
}

// FacesAt derives rotation and opacity for flip value v, where 0 shows the
// question and 1 the answer.
func FacesAt(v float64) Faces {
	return Faces{
		FrontRotation: motion.Interpolate(v, frontRotation),
		BackRotation:  motion.Interpolate(v, backRotation),
		FrontOpacity:  motion.Interpolate(v, frontOpacity),
		BackOpacity:   motion.Interpolate(v, backOpacity),
	}
}

// ShowingBack reports which face should receive interaction.
func (f Faces) ShowingBack() bool { return f.BackOpacity > f.FrontOpacity }
