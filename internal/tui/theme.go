package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	knownStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	missStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Align(lipgloss.Center, lipgloss.Center)
	cardBackBorder  = colorAccent
	cardDoneBorder  = colorSuccess
	faceLabelStyle  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	popupTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	popupHintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle     = lipgloss.NewStyle().Background(colorMantle)
)
