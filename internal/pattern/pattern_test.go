package pattern

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/randomizedcoder/go-spinrun/internal/sink"
)

func TestDots_WritesAndPauses(t *testing.T) {
	var buf bytes.Buffer
	s := sink.New(&buf)
	p := Dots(20 * time.Millisecond)

	start := time.Now()
	p(s)
	elapsed := time.Since(start)

	if buf.String() != "." {
		t.Errorf("output = %q, want a single dot", buf.String())
	}
	if elapsed < 20*time.Millisecond {
		t.Errorf("pattern returned after %v, should block for its interval", elapsed)
	}
}

func TestDots_RepeatedBeats(t *testing.T) {
	var buf bytes.Buffer
	s := sink.New(&buf)
	p := Dots(time.Millisecond)

	for i := 0; i < 3; i++ {
		p(s)
	}
	if buf.String() != "..." {
		t.Errorf("output = %q, want %q", buf.String(), "...")
	}
}

func TestDots_NonPositiveIntervalUsesDefault(t *testing.T) {
	// Only checks construction; invoking would block for DefaultInterval.
	if p := Dots(0); p == nil {
		t.Error("Dots(0) returned nil")
	}
	if p := Dots(-time.Second); p == nil {
		t.Error("Dots(negative) returned nil")
	}
}

func TestSpinner_AdvancesFrames(t *testing.T) {
	var buf bytes.Buffer
	s := sink.New(&buf)
	p := Spinner(time.Millisecond)

	p(s)
	first := buf.String()
	p(s)
	second := strings.TrimPrefix(buf.String(), first)

	if !strings.HasPrefix(first, "\r") {
		t.Errorf("spinner output %q should overwrite in place with a carriage return", first)
	}
	if first == second {
		t.Error("consecutive spinner beats should render different frames")
	}
}

func TestSpinner_IndependentState(t *testing.T) {
	var bufA, bufB bytes.Buffer
	a := Spinner(time.Millisecond)
	b := Spinner(time.Millisecond)

	a(sink.New(&bufA))
	a(sink.New(&bufA))
	b(sink.New(&bufB))

	// b starts from the first frame regardless of a's progress.
	if !strings.HasPrefix(bufA.String(), bufB.String()) {
		t.Errorf("independent spinners should not share frame state: a=%q b=%q",
			bufA.String(), bufB.String())
	}
}
