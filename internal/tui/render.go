package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cardswipe/internal/controller"
	"github.com/jask/cardswipe/internal/deck"
)

const cardHeight = 9

func (a *App) View() string {
	width := max(1, a.width)
	snap := a.ctrl.Snapshot()
	d := a.ctrl.Deck()

	header := headerStyle.Render(d.Name) + mutedStyle.Render(fmt.Sprintf("  %d/%d", min(snap.CurrentIndex+1, snap.Total), snap.Total))
	known, unknown := a.orch.Tally()
	tally := knownStyle.Render(fmt.Sprintf("✓ %d", known)) + "  " + missStyle.Render(fmt.Sprintf("✗ %d", unknown)) +
		mutedStyle.Render(fmt.Sprintf("  completed %d", snap.Completed))

	var card string
	if c, err := a.ctrl.Card(); err == nil {
		card = a.renderCard(c, a.ctrl.IsCompleted(c.ID))
	}

	body := strings.Join([]string{
		header,
		"",
		card,
		"",
		tally,
		"",
		footerStyle.Width(width).Render(a.help.View(a.keys)),
		statusBarStyle.Width(width).Render(a.orch.Status()),
	}, "\n")

	if r := a.orch.Result(); r != nil {
		popup := strings.Join([]string{
			popupTitleStyle.Render("Session complete"),
			"",
			fmt.Sprintf("You knew %d of %d cards.", r.Score, r.Total),
			"",
			popupHintStyle.Render("r restart · q quit"),
		}, "\n")
		return renderPopup(body, popup, width, max(1, a.height))
	}
	return body
}

// renderCard draws the active card squashed by the flip rotation and shifted
// by the swipe offset.
func (a *App) renderCard(c deck.Card, completed bool) string {
	width := max(1, a.width)
	full := min(60, max(20, width*3/5))

	faces := controller.FacesAt(a.flip.Get().X)
	back := faces.ShowingBack()
	angle, opacity := faces.FrontRotation, faces.FrontOpacity
	label, text := "question", c.Question
	if back {
		angle, opacity = faces.BackRotation, faces.BackOpacity
		label, text = "answer", c.Answer
	}
	inner := max(3, int(math.Round(float64(full)*math.Abs(math.Cos(angle*math.Pi/180)))))

	style := cardStyle.Width(inner).Height(cardHeight)
	switch {
	case back:
		style = style.BorderForeground(cardBackBorder)
	case completed:
		style = style.BorderForeground(cardDoneBorder)
	}
	if opacity < 0.999 {
		style = style.Faint(true)
	}
	content := ""
	if inner >= 12 {
		content = faceLabelStyle.Render(label) + "\n\n" + text
	}
	block := style.Render(content)

	shift := int(math.Round(a.offset.Get().X / a.unitsPerCell()))
	x := (width-lipgloss.Width(block))/2 + shift
	return placeAt(block, x, width)
}
