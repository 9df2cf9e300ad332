package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

type animation struct {
	from    Vec
	target  Vec
	tr      Transition
	elapsed time.Duration
	done    DoneFunc
}

// Value is an animatable position owned by an Engine.
type Value struct {
	engine    *Engine
	pos       Vec
	vel       Vec
	restDelta float64
	anim      *animation
}

// Engine steps every value it created. It is not safe for concurrent use.
type Engine struct {
	values  []*Value
	pending []DoneFunc
}

func NewEngine() *Engine { return &Engine{} }

// NewValue creates a value at initial. restDelta is the distance from the
// target below which a spring counts as settled.
func (e *Engine) NewValue(initial Vec, restDelta float64) *Value {
	if restDelta <= 0 {
		restDelta = 0.001
	}
	v := &Value{engine: e, pos: initial, restDelta: restDelta}
	e.values = append(e.values, v)
	return v
}

// Active reports whether a Step would move a value or deliver a callback.
func (e *Engine) Active() bool {
	if len(e.pending) > 0 {
		return true
	}
	for _, v := range e.values {
		if v.anim != nil {
			return true
		}
	}
	return false
}

// Step advances all running animations by dt and then delivers callbacks:
// interrupted ones first, then those that finished during this step.
// Callbacks may start new animations; those run from the next Step.
func (e *Engine) Step(dt time.Duration) {
	var finished []DoneFunc
	if dt > 0 {
		for _, v := range e.values {
			if v.anim == nil {
				continue
			}
			if v.advance(dt) {
				a := v.anim
				v.anim = nil
				if a.done != nil {
					finished = append(finished, a.done)
				}
			}
		}
	}
	interrupted := e.pending
	e.pending = nil
	for _, fn := range interrupted {
		fn(false)
	}
	for _, fn := range finished {
		fn(true)
	}
}

func (v *Value) Get() Vec { return v.pos }

func (v *Value) Animating() bool { return v.anim != nil }

// Set jumps to p, interrupting any running animation.
func (v *Value) Set(p Vec) {
	v.interrupt()
	v.pos = p
	v.vel = Vec{}
}

// AnimateTo starts a transition from the current position to target,
// replacing any running animation. Spring transitions keep the current velocity.
func (v *Value) AnimateTo(target Vec, tr Transition, done DoneFunc) {
	v.interrupt()
	if tr.Mode == Timed {
		v.vel = Vec{}
	}
	v.anim = &animation{from: v.pos, target: target, tr: tr, done: done}
}

func (v *Value) interrupt() {
	if v.anim == nil {
		return
	}
	if v.anim.done != nil {
		v.engine.pending = append(v.engine.pending, v.anim.done)
	}
	v.anim = nil
}

// advance moves the value one step and reports whether it reached the target.
func (v *Value) advance(dt time.Duration) bool {
	a := v.anim
	a.elapsed += dt
	switch a.tr.Mode {
	case Spring:
		freq, damp := a.tr.Frequency, a.tr.Damping
		if freq <= 0 {
			freq = DefaultSpringFrequency
		}
		if damp <= 0 {
			damp = DefaultSpringDamping
		}
		s := harmonica.NewSpring(dt.Seconds(), freq, damp)
		v.pos.X, v.vel.X = s.Update(v.pos.X, v.vel.X, a.target.X)
		v.pos.Y, v.vel.Y = s.Update(v.pos.Y, v.vel.Y, a.target.Y)
		if v.pos.Near(a.target, v.restDelta) && math.Abs(v.vel.X) <= v.restDelta*10 && math.Abs(v.vel.Y) <= v.restDelta*10 {
			v.pos, v.vel = a.target, Vec{}
			return true
		}
		return false
	default:
		if a.tr.Duration <= 0 || a.elapsed >= a.tr.Duration {
			v.pos = a.target
			return true
		}
		p := easeOutCubic(float64(a.elapsed) / float64(a.tr.Duration))
		v.pos = a.from.Add(a.target.Sub(a.from).Scale(p))
		return false
	}
}
