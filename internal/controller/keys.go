package controller

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

var defaultKeys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("j/dn", "next branch"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("k/up", "previous branch"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("C-b", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f", " "),
		key.WithHelp("C-f", "scroll down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.PageDown, k.PageUp, k.Home, k.End, k.Quit}
}
