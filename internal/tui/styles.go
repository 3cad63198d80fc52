// Package tui provides an optional live terminal view for a run.
//
// The TUI uses Bubble Tea for the application framework and Lipgloss for
// styling. It shows the command being run, a spinner with elapsed time,
// the most recent output lines, and the final status.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors based on a modern dark theme
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess   = lipgloss.Color("#10B981") // Green
	colorError     = lipgloss.Color("#EF4444") // Red
	colorText      = lipgloss.Color("#E5E7EB") // Light gray
	colorTextMuted = lipgloss.Color("#9CA3AF") // Medium gray
	colorBorder    = lipgloss.Color("#374151") // Border gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	outputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	statusFailStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// renderStatus renders the final status line for an exit code.
func renderStatus(exitCode int) string {
	if exitCode == 0 {
		return statusOKStyle.Render("✔ completed")
	}
	return statusFailStyle.Render(fmt.Sprintf("✘ exit code %d", exitCode))
}
