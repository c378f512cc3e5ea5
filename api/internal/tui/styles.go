package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Error    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Output   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Bold(true).MarginTop(1),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("0")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Output:   lipgloss.NewStyle().Padding(0, 1),
	}
}
