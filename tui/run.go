package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type program struct {
	page Model
}

func (p program) Init() tea.Cmd { return p.page.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.page, cmd = p.page.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.page.View() }

// Run shows the page view until the user quits. With noColor the view is
// rendered without ANSI colors.
func Run(cfg Config, noColor bool) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	m, err := New(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = tea.NewProgram(program{page: m}, tea.WithAltScreen()).Run()
	return err
}
