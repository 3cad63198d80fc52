package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state.
func (m Model) View() string {
	if m.quitting && !m.done {
		return mutedStyle.Render("detached; command still running") + "\n"
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderCommand())
	sections = append(sections, m.renderProgress())

	if len(m.lines) > 0 {
		sections = append(sections, m.renderOutput())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderHeader() string {
	return headerStyle.Width(m.width).Render(" go-spinrun ")
}

func (m Model) renderCommand() string {
	return mutedStyle.Render("  $ ") + commandStyle.Render(strings.Join(m.args, " "))
}

func (m Model) renderProgress() string {
	if m.done {
		return "  " + renderStatus(m.exitCode) +
			mutedStyle.Render(fmt.Sprintf("  (%s)", formatDuration(m.Elapsed())))
	}

	frame := spinnerStyle.Render(spinnerFrames[m.frame%len(spinnerFrames)])
	return fmt.Sprintf("  %s %s", frame,
		mutedStyle.Render("running for "+formatDuration(m.Elapsed())))
}

func (m Model) renderOutput() string {
	return outputBoxStyle.Width(m.width - 2).Render(
		mutedStyle.Render(strings.Join(m.lines, "\n")))
}

func (m Model) renderFooter() string {
	if m.done {
		return ""
	}
	return mutedStyle.Render("  q to detach")
}

// formatDuration renders a duration with one-second granularity.
func formatDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
