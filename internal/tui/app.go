package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cardswipe/internal/controller"
	"github.com/jask/cardswipe/internal/deck"
	"github.com/jask/cardswipe/internal/motion"
	"github.com/jask/cardswipe/internal/session"
)

// frameMsg advances animations by one frame.
type frameMsg time.Time

// App is the bubbletea model for a play session. Mouse drags on any cell act
// as the swipe gesture; the terminal width is scaled onto the controller's
// viewport width.
type App struct {
	orch   *session.Orchestrator
	ctrl   *controller.Controller
	engine *motion.Engine
	offset *motion.Value
	flip   *motion.Value
	opts   controller.Options
	log    *slog.Logger

	keys keyMap
	help help.Model

	width   int
	height  int
	frame   time.Duration
	ticking bool
	drag    gesture
}

func New(d deck.Deck, opts controller.Options, fps int, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if fps <= 0 {
		fps = 60
	}
	engine := motion.NewEngine()
	offset := engine.NewValue(motion.Vec{}, 0.5)
	flip := engine.NewValue(motion.Vec{}, 0.002)
	orch := session.New(d, offset, flip, opts, log)
	return &App{
		orch:   orch,
		ctrl:   orch.Controller(),
		engine: engine,
		offset: offset,
		flip:   flip,
		opts:   opts,
		log:    log,
		keys:   newKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
		frame:  time.Second / time.Duration(fps),
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case frameMsg:
		a.engine.Step(a.frame)
		a.ticking = false
		return a, a.animate()
	case tea.MouseMsg:
		a.handleMouse(m)
		return a, a.animate()
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		a.handleKey(m)
		return a, a.animate()
	}
	return a, nil
}

// animate schedules the next frame while anything is moving.
func (a *App) animate() tea.Cmd {
	if a.ticking || !a.engine.Active() {
		return nil
	}
	a.ticking = true
	return tea.Tick(a.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) unitsPerCell() float64 {
	return a.opts.ViewportWidth / float64(max(1, a.width))
}

func (a *App) sample(dx, dy int) controller.Sample {
	u := a.unitsPerCell()
	return controller.Sample{DX: float64(dx) * u, DY: float64(dy) * u}
}

func (a *App) handleMouse(m tea.MouseMsg) {
	if a.orch.Result() != nil {
		return
	}
	switch m.Action {
	case tea.MouseActionPress:
		if m.Button == tea.MouseButtonLeft {
			a.drag.press(m.X, m.Y)
		}
	case tea.MouseActionMotion:
		if dx, dy, ok := a.drag.motion(m.X, m.Y); ok {
			a.ctrl.OnDragUpdate(a.sample(dx, dy))
		}
	case tea.MouseActionRelease:
		dx, dy, moved, ok := a.drag.release(m.X, m.Y)
		if !ok {
			return
		}
		if !moved {
			a.ctrl.OnTap()
			return
		}
		a.ctrl.OnDragEnd(a.sample(dx, dy))
	}
}

func (a *App) handleKey(m tea.KeyMsg) {
	if a.orch.Result() != nil {
		if key.Matches(m, a.keys.Restart, a.keys.Flip) {
			a.orch.Restart()
		}
		return
	}
	switch {
	case key.Matches(m, a.keys.Flip):
		a.ctrl.OnTap()
	case key.Matches(m, a.keys.Known):
		a.orch.Mark(true)
	case key.Matches(m, a.keys.Unknown):
		a.orch.Mark(false)
	case key.Matches(m, a.keys.Next):
		a.ctrl.Swipe(controller.Left)
	case key.Matches(m, a.keys.Prev):
		a.ctrl.Swipe(controller.Right)
	case key.Matches(m, a.keys.Restart):
		a.orch.Restart()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
}
