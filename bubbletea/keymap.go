package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the diff preview.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding
	Yank         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns vim-style pager bindings. GotoTop matches a bare
// "g"; the model turns it into the gg sequence.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		GotoTop:      key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "top")),
		GotoBottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		Yank:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy diff")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
