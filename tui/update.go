package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	m.syncTriggers()
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	// Any key ends the previous action: a cut selection stays visible only
	// until the user moves on.
	if p := m.last.pending; p != nil {
		p.Release()
		m.last.pending = nil
	}
	m.syncTriggers()

	switch {
	case key.Matches(msg, km.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, km.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, km.Down):
		if m.cursor < len(m.triggers)-1 {
			m.cursor++
		}
	case key.Matches(msg, km.Activate):
		m.activate()
	case key.Matches(msg, km.Release):
		*m.last = outcome{}
	}
	return m, nil
}

func (m *Model) activate() {
	if m.cursor < 0 || m.cursor >= len(m.triggers) {
		return
	}
	t := m.triggers[m.cursor]
	m.cfg.Logger.Debug("activate trigger", "tag", t.Tag(), "id", t.ID())
	m.cfg.Doc.Click(t)
	// The click may have changed values (cut) or removed nodes.
	m.syncTriggers()
}
