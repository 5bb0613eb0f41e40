package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap implements help.KeyMap for the footer.
type keyMap struct {
	Leading  key.Binding
	Trailing key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Leading: key.NewBinding(
			key.WithKeys("l", "left"),
			key.WithHelp("l", "leading"),
		),
		Trailing: key.NewBinding(
			key.WithKeys("r", "right"),
			key.WithHelp("r", "trailing"),
		),
		Top: key.NewBinding(
			key.WithKeys("t", "up"),
			key.WithHelp("t", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("b", "down"),
			key.WithHelp("b", "bottom"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d", "esc"),
			key.WithHelp("d", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Leading, k.Trailing, k.Top, k.Bottom, k.Dismiss, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Leading, k.Trailing, k.Top, k.Bottom},
		{k.Dismiss, k.Help, k.Quit},
	}
}
