package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxOutputLines is how many recent output lines the view keeps.
const maxOutputLines = 8

// spinnerFrames are the braille cells cycled by the elapsed-time line.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TickMsg is sent periodically to advance the spinner and elapsed time.
type TickMsg time.Time

// LineMsg carries one decoded line of child output.
type LineMsg string

// DoneMsg signals that the child has exited.
type DoneMsg struct {
	ExitCode int
	Err      error
}

// Model represents the TUI state for one run.
type Model struct {
	args      []string
	startTime time.Time

	frame    int
	lines    []string
	done     bool
	exitCode int
	err      error

	width    int
	quitting bool
}

// New creates a model for the given command argument vector.
func New(args []string) Model {
	return Model{
		args:      args,
		startTime: time.Now(),
		width:     80,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// Leaves the view; the child still runs to completion.
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		return m, tickCmd()

	case LineMsg:
		m.lines = append(m.lines, string(msg))
		if len(m.lines) > maxOutputLines {
			m.lines = m.lines[len(m.lines)-maxOutputLines:]
		}
		return m, nil

	case DoneMsg:
		m.done = true
		m.exitCode = msg.ExitCode
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// Elapsed returns time since the run started.
func (m Model) Elapsed() time.Duration {
	return time.Since(m.startTime)
}

// tickCmd returns a command that sends a tick after 100ms.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
