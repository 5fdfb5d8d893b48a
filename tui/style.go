package tui

import "github.com/charmbracelet/lipgloss"

// Style controls the page view's rendering.
type Style struct {
	Title   lipgloss.Style
	Trigger lipgloss.Style
	Cursor  lipgloss.Style
	Preview lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Title:   lipgloss.NewStyle().Bold(true),
		Trigger: lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Preview: dim,
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:    dim,
	}
}
