package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increase key.Binding
	Decrease key.Binding
	More     key.Binding
	Fewer    key.Binding
	Style    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "progress +1"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "progress -1"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add segment"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "remove segment"),
		),
		Style: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle style"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Style, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase},
		{k.Fewer, k.More},
		{k.Style, k.Quit},
	}
}
