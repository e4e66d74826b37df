package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the browser.
type Styles struct {
	Title   lipgloss.Style
	Pane    lipgloss.Style
	Focused lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles is the dark teal palette.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#1ABC9C")
	text := lipgloss.Color("#ECF0F1")
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Pane:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#34495E")).Padding(0, 1),
		Focused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Info:    lipgloss.NewStyle().Foreground(text),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
