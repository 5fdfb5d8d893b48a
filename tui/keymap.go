package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the page view key bindings.
type KeyMap struct {
	Up, Down key.Binding
	Activate key.Binding
	Release  key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "previous")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click")),
		Release:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Release, k.Quit}
}
