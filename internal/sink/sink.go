// Package sink provides the write target for progress indicator output.
package sink

import (
	"io"
	"os"
)

// flusher is satisfied by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Sink is a write+flush target for indicator characters.
//
// Flush delegates to the underlying writer when it is buffered and is a
// no-op otherwise (os.Stderr is unbuffered in Go, so flushing it costs
// nothing).
type Sink struct {
	w io.Writer
}

// New creates a Sink writing to w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Stderr returns a Sink writing to the process-wide standard error stream.
// This is the default sink for indicator output.
func Stderr() *Sink {
	return New(os.Stderr)
}

// WriteString writes text to the sink.
func (s *Sink) WriteString(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

// Flush flushes the underlying writer if it supports flushing.
func (s *Sink) Flush() error {
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
