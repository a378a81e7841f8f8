// Package tui is the terminal front-end: a bubbletea program drawing the
// calculator display and keypad with lipgloss.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#101F38")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#8A94A6")
	colorError   = lipgloss.Color("#E53935")
)

// Styles holds the lipgloss styles used by View.
type Styles struct {
	Frame      lipgloss.Style
	Expression lipgloss.Style
	Result     lipgloss.Style
	Error      lipgloss.Style
	Key        lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the calcpad palette.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
		Expression: lipgloss.NewStyle().Foreground(colorMuted).Width(displayWidth).Align(lipgloss.Right),
		Result:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Width(displayWidth).Align(lipgloss.Right),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(colorError).Width(displayWidth).Align(lipgloss.Right),
		Key:        lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center),
		Help:       lipgloss.NewStyle().Foreground(colorMuted),
	}
}
