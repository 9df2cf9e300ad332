package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Flip    key.Binding
	Known   key.Binding
	Unknown key.Binding
	Prev    key.Binding
	Next    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Flip:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "flip")),
		Known:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "knew it")),
		Unknown: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "didn't know")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Known, k.Unknown, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.Known, k.Unknown},
		{k.Prev, k.Next},
		{k.Restart, k.Help, k.Quit},
	}
}
