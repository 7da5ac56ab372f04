package components

import (
	"github.com/theirongolddev/scaleos/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: a status message on the
// left and key hints on the right. isErr colors the message as an error.
func RenderStatusBar(width int, status string, isErr bool, hints string) string {
	t := theme.Active

	statusColor := t.TextMuted
	if isErr {
		statusColor = t.Red
	}
	left := lipgloss.NewStyle().Foreground(statusColor).Render(" " + status)
	right := hints + " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return lipgloss.NewStyle().Width(width).Render(left + lipgloss.NewStyle().Width(padding).Render("") + right)
}
