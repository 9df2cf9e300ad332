package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cardswipe/internal/controller"
	"github.com/jask/cardswipe/internal/deck"
	"github.com/jask/cardswipe/internal/motion"
)

func newOrchestrator(t *testing.T, n int) (*Orchestrator, *motion.Engine) {
	t.Helper()
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = deck.Card{ID: int64(i + 1), Question: "q", Answer: "a"}
	}
	d, err := deck.New("id", "numbers", cards)
	require.NoError(t, err)
	e := motion.NewEngine()
	o := New(d, e.NewValue(motion.Vec{}, 0.5), e.NewValue(motion.Vec{}, 0.002), controller.DefaultOptions(), nil)
	return o, e
}

func settle(t *testing.T, e *motion.Engine) {
	t.Helper()
	for i := 0; i < 2000 && e.Active(); i++ {
		e.Step(time.Second / 60)
	}
	require.False(t, e.Active())
}

func TestTalliesAndResult(t *testing.T) {
	o, e := newOrchestrator(t, 3)
	o.Mark(true)
	// ignored while the card is leaving
	o.Mark(false)
	settle(t, e)
	o.Mark(false)
	settle(t, e)
	require.Nil(t, o.Result())
	o.Mark(true)

	known, unknown := o.Tally()
	require.Equal(t, 2, known)
	require.Equal(t, 1, unknown)
	require.NotNil(t, o.Result())
	require.Equal(t, Result{Score: 2, Total: 3, Known: 2, Unknown: 1}, *o.Result())
	require.Contains(t, o.Status(), "2/3")

	o.Mark(true)
	known, _ = o.Tally()
	require.Equal(t, 2, known)
}

func TestRestart(t *testing.T) {
	o, e := newOrchestrator(t, 5)
	for i := 0; i < 5; i++ {
		o.Mark(true)
		settle(t, e)
	}
	require.Equal(t, 5, o.Result().Score)
	require.Equal(t, 5, o.Controller().Snapshot().Completed)

	o.Restart()
	require.Nil(t, o.Result())
	known, unknown := o.Tally()
	require.Zero(t, known)
	require.Zero(t, unknown)
	snap := o.Controller().Snapshot()
	require.Equal(t, deck.Snapshot{Total: 5}, snap)
	require.Equal(t, "card 1 of 5", o.Status())
}

func TestStatusFollowsNavigationAndFlip(t *testing.T) {
	o, e := newOrchestrator(t, 4)
	c := o.Controller()
	c.OnTap()
	require.Equal(t, "card 1 of 4 · answer", o.Status())
	settle(t, e)
	c.Swipe(controller.Left)
	settle(t, e)
	require.Equal(t, "card 2 of 4", o.Status())
}

func TestRemarkAfterGoingBackTalliesOnce(t *testing.T) {
	o, e := newOrchestrator(t, 3)
	c := o.Controller()

	o.Mark(true)
	settle(t, e)
	c.Swipe(controller.Right)
	settle(t, e)
	require.Equal(t, 0, c.Snapshot().CurrentIndex)

	o.Mark(false)
	settle(t, e)
	known, unknown := o.Tally()
	require.Equal(t, 1, known)
	require.Zero(t, unknown)
	require.Equal(t, c.Snapshot().Completed, known)

	o.Mark(false)
	settle(t, e)
	o.Mark(false)
	require.NotNil(t, o.Result())
	require.Equal(t, Result{Score: 1, Total: 3, Known: 1, Unknown: 2}, *o.Result())
	require.LessOrEqual(t, o.Result().Known+o.Result().Unknown, o.Result().Total)
}
