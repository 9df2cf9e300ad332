package session

import (
	"fmt"
	"log/slog"

	"github.com/jask/cardswipe/internal/controller"
	"github.com/jask/cardswipe/internal/deck"
)

// Result is the end-of-session report.
type Result struct {
	Score   int
	Total   int
	Known   int
	Unknown int
}

func (r Result) String() string {
	return fmt.Sprintf("%d/%d known", r.Score, r.Total)
}

// Orchestrator keeps score tallies around a controller and reacts to its
// outcomes. It only reads controller state through snapshots.
type Orchestrator struct {
	ctrl   *controller.Controller
	log    *slog.Logger
	marks  map[int64]bool
	result *Result
	status string
}

// New builds an orchestrator and the controller it listens to.
func New(d deck.Deck, offset, flip controller.Track, opts controller.Options, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	o := &Orchestrator{log: log, marks: make(map[int64]bool)}
	o.ctrl = controller.New(d, offset, flip, o, opts, log)
	o.status = fmt.Sprintf("card 1 of %d", d.Len())
	return o
}

func (o *Orchestrator) Controller() *controller.Controller { return o.ctrl }

// Mark reports whether the current card was known and tallies it when the
// controller is in a state to accept it. Each card is tallied once; a card
// that was known once stays known, like the completed set.
func (o *Orchestrator) Mark(remembered bool) {
	if o.ctrl.Phase() != controller.Idle || o.ctrl.Snapshot().Finished {
		return
	}
	card, err := o.ctrl.Card()
	if err != nil {
		o.log.Error("mark without current card", "err", err)
		return
	}
	o.marks[card.ID] = o.marks[card.ID] || remembered
	o.ctrl.OnMark(remembered)
}

// Restart clears tallies and the end-of-session report and resets the controller.
func (o *Orchestrator) Restart() {
	clear(o.marks)
	o.result = nil
	o.ctrl.Reset()
	o.status = fmt.Sprintf("card 1 of %d", o.ctrl.Deck().Len())
}

// Tally returns the number of marked cards that were known and not known.
// known always equals the controller's completed count.
func (o *Orchestrator) Tally() (known, unknown int) {
	for _, k := range o.marks {
		if k {
			known++
		} else {
			unknown++
		}
	}
	return known, unknown
}

// Result is non-nil once the session has completed.
func (o *Orchestrator) Result() *Result { return o.result }

func (o *Orchestrator) Status() string { return o.status }

func (o *Orchestrator) OnSessionComplete(score, total int) {
	known, unknown := o.Tally()
	o.result = &Result{Score: score, Total: total, Known: known, Unknown: unknown}
	o.status = "session complete: " + o.result.String()
	o.log.Info("session result", "score", score, "total", total, "known", known, "unknown", unknown)
}

func (o *Orchestrator) OnIndexChanged(index int) {
	o.status = fmt.Sprintf("card %d of %d", index+1, o.ctrl.Deck().Len())
}

func (o *Orchestrator) OnFlipChanged(flipped bool) {
	base := fmt.Sprintf("card %d of %d", o.ctrl.Snapshot().CurrentIndex+1, o.ctrl.Deck().Len())
	if flipped {
		o.status = base + " · answer"
		return
	}
	o.status = base
}
