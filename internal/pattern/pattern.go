// Package pattern provides the progress callbacks invoked while a child
// process runs.
//
// A Pattern owns its own pacing: the runner loops a Pattern until the child
// exits and imposes no timing of its own. A Pattern that never blocks turns
// the indicator loop into a busy poll, so every built-in pattern sleeps for
// its configured interval on each call.
package pattern

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/randomizedcoder/go-spinrun/internal/sink"
)

// Pattern writes one beat of progress feedback to the sink, then blocks for
// its own interval. No state beyond what the caller closes over.
type Pattern func(*sink.Sink)

// DefaultInterval is the pause of the default dots pattern.
const DefaultInterval = 500 * time.Millisecond

// Dots returns the default pattern: write a single ".", flush, and sleep
// for the given interval (DefaultInterval if non-positive).
//
// The pattern has no awareness of process state; it exists purely to
// produce a visible heartbeat.
func Dots(interval time.Duration) Pattern {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return func(s *sink.Sink) {
		s.WriteString(".")
		s.Flush()
		time.Sleep(interval)
	}
}

// spinnerFrames are braille cells forming a rotating spinner.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var spinnerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#06B6D4")).
	Bold(true)

// Spinner returns a pattern that overwrites a single styled spinner cell in
// place using carriage returns. Frame state lives in the closure, so each
// Spinner value animates independently.
func Spinner(interval time.Duration) Pattern {
	if interval <= 0 {
		interval = DefaultInterval / 5
	}
	frame := 0
	return func(s *sink.Sink) {
		s.WriteString("\r" + spinnerStyle.Render(spinnerFrames[frame%len(spinnerFrames)]))
		s.Flush()
		frame++
		time.Sleep(interval)
	}
}
