package controller

import (
	"log/slog"
	"math"

	"github.com/jask/cardswipe/internal/deck"
	"github.com/jask/cardswipe/internal/motion"
)

// Track is the animatable value the controller drives. Values are never read
// back for decisions.
type Track interface {
	Set(p motion.Vec)
	AnimateTo(target motion.Vec, tr motion.Transition, done motion.DoneFunc)
}

// Listener receives session outcomes.
type Listener interface {
	OnSessionComplete(score, total int)
	OnIndexChanged(index int)
	OnFlipChanged(flipped bool)
}

// Sample is a drag displacement since the gesture started.
type Sample struct {
	DX, DY float64
}

type outcomeKind int

const (
	outcomeNavigate outcomeKind = iota
	outcomeComplete
)

type outcome struct {
	kind  outcomeKind
	index int
}

// Controller is the swipe/flip state machine. It is not safe for concurrent use.
type Controller struct {
	opts     Options
	session  *deck.Session
	offset   Track
	flip     Track
	listener Listener
	log      *slog.Logger

	phase      Phase
	gen        uint64
	flipGen    uint64
	lastOffset motion.Vec
}

// New builds a controller over d. A nil listener or logger is allowed.
func New(d deck.Deck, offset, flip Track, listener Listener, opts Options, log *slog.Logger) *Controller {
	if listener == nil {
		listener = nopListener{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		opts:     opts,
		session:  deck.NewSession(d),
		offset:   offset,
		flip:     flip,
		listener: listener,
		log:      log.With("deck", d.Name),
	}
}

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Snapshot() deck.Snapshot { return c.session.Snapshot() }

func (c *Controller) Deck() deck.Deck { return c.session.Deck() }

func (c *Controller) Options() Options { return c.opts }

// Card returns the card at the current index.
func (c *Controller) Card() (deck.Card, error) { return c.session.Current() }

// IsCompleted reports whether id has been marked as known this session.
func (c *Controller) IsCompleted(id int64) bool { return c.session.IsCompleted(id) }

// OnDragUpdate tracks the card under the pointer. A drag may start over a
// running flip or spring-back; it takes over the offset track.
func (c *Controller) OnDragUpdate(s Sample) {
	if c.session.Finished() {
		return
	}
	switch c.phase {
	case Idle, Flipping:
		c.setPhase(Dragging)
	case SpringingBack:
		// orphan the spring-back completion
		c.gen++
		c.setPhase(Dragging)
	case Dragging:
	default:
		return
	}
	c.lastOffset = motion.Vec{X: s.DX}
	c.offset.Set(c.lastOffset)
}

// OnDragEnd decides between commit and cancel for the released drag.
func (c *Controller) OnDragEnd(s Sample) {
	if c.phase != Dragging {
		return
	}
	c.lastOffset = motion.Vec{X: s.DX}
	c.offset.Set(c.lastOffset)
	switch {
	case s.DX < -c.opts.Threshold:
		c.commit(Left)
	case s.DX > c.opts.Threshold:
		c.commit(Right)
	default:
		c.springBack()
	}
}

// OnTap flips the card. It is ignored while a drag holds the card away from rest.
func (c *Controller) OnTap() {
	if c.session.Finished() {
		return
	}
	if c.phase != Idle && c.phase != Flipping {
		return
	}
	if math.Abs(c.lastOffset.X) >= c.opts.TapEpsilon {
		return
	}
	flipped := !c.session.IsFlipped()
	c.session.SetFlipped(flipped)
	c.flipGen++
	g := c.flipGen
	c.setPhase(Flipping)
	target := motion.Vec{}
	if flipped {
		target.X = 1
	}
	c.flip.AnimateTo(target, motion.SpringTransition(), func(finished bool) {
		if !finished || g != c.flipGen || c.phase != Flipping {
			return
		}
		c.setPhase(Idle)
	})
	c.listener.OnFlipChanged(flipped)
}

// OnMark records the self-reported outcome for the current card and moves on.
// On the last card it ends the session instead.
func (c *Controller) OnMark(remembered bool) {
	if c.session.Finished() || c.phase != Idle {
		return
	}
	card, err := c.session.Current()
	if err != nil {
		c.log.Error("mark without current card", "index", c.session.Index(), "err", err)
		return
	}
	if remembered {
		c.session.MarkCompleted(card.ID)
	}
	if c.session.HasNext() {
		c.commit(Left)
		return
	}
	c.finish()
}

// Swipe runs a commit in dir without a gesture, as if released past the threshold.
func (c *Controller) Swipe(dir Direction) {
	if c.session.Finished() || c.phase != Idle {
		return
	}
	c.commit(dir)
}

// Reset starts the session over. Any animation in flight is orphaned.
func (c *Controller) Reset() {
	c.session.Reset()
	c.gen++
	c.flipGen++
	c.lastOffset = motion.Vec{}
	c.offset.Set(motion.Vec{})
	c.flip.Set(motion.Vec{})
	c.setPhase(Idle)
	c.log.Info("session reset")
}

// step maps a commit direction onto an index delta.
func (c *Controller) step(dir Direction) int {
	if c.opts.Direction == Dismiss || dir == Left {
		return 1
	}
	return -1
}

func (c *Controller) commit(dir Direction) {
	step := c.step(dir)
	var out outcome
	switch {
	case step > 0 && c.session.HasNext(), step < 0 && c.session.HasPrev():
		out = outcome{kind: outcomeNavigate, index: c.session.Index() + step}
	case step > 0 && c.opts.AutoCompleteOnLastSwipe:
		out = outcome{kind: outcomeComplete}
	default:
		c.log.Debug("commit past edge", "direction", dir, "index", c.session.Index())
		c.springBack()
		return
	}

	c.gen++
	g := c.gen
	c.setPhase(Committing)
	exit := motion.Vec{X: dir.sign() * (c.opts.ViewportWidth + c.opts.ExitMargin)}
	c.offset.AnimateTo(exit, motion.TimedTransition(c.opts.CommitDuration), func(finished bool) {
		if !finished || g != c.gen || c.phase != Committing {
			return
		}
		switch out.kind {
		case outcomeNavigate:
			c.setIndex(out.index)
		case outcomeComplete:
			c.finish()
		}
		c.lastOffset = motion.Vec{}
		c.offset.Set(motion.Vec{})
		c.setPhase(Idle)
	})
}

func (c *Controller) springBack() {
	c.gen++
	g := c.gen
	c.setPhase(SpringingBack)
	c.offset.AnimateTo(motion.Vec{}, motion.SpringTransition(), func(finished bool) {
		if !finished || g != c.gen || c.phase != SpringingBack {
			return
		}
		c.lastOffset = motion.Vec{}
		c.setPhase(Idle)
	})
}

// setIndex is the only place the index changes. The flip state always
// returns to the question face with it.
func (c *Controller) setIndex(i int) {
	wasFlipped := c.session.IsFlipped()
	if err := c.session.SetIndex(i); err != nil {
		c.log.Error("set index", "index", i, "err", err)
		return
	}
	c.flipGen++
	c.flip.Set(motion.Vec{})
	c.listener.OnIndexChanged(i)
	if wasFlipped {
		c.listener.OnFlipChanged(false)
	}
}

func (c *Controller) finish() {
	c.session.SetFinished()
	score, total := c.session.CompletedCount(), c.session.Deck().Len()
	c.log.Info("session complete", "score", score, "total", total)
	c.listener.OnSessionComplete(score, total)
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	c.log.Debug("phase", "from", c.phase, "to", p)
	c.phase = p
}

type nopListener struct{}

func (nopListener) OnSessionComplete(int, int) {}
func (nopListener) OnIndexChanged(int)         {}
func (nopListener) OnFlipChanged(bool)         {}
