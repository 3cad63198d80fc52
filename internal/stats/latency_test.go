package stats

import (
	"testing"
	"time"
)

func TestLineLatency_Empty(t *testing.T) {
	l := NewLineLatency()

	s := l.Summary()
	if s.Lines != 0 {
		t.Errorf("Lines = %d, want 0", s.Lines)
	}
	if s.P50 != 0 || s.P90 != 0 || s.P99 != 0 {
		t.Errorf("empty tracker should report zero percentiles, got %+v", s)
	}
}

func TestLineLatency_SingleLineHasNoGaps(t *testing.T) {
	l := NewLineLatency()
	l.Observe(time.Now())

	s := l.Summary()
	if s.Lines != 1 {
		t.Errorf("Lines = %d, want 1", s.Lines)
	}
	if s.P50 != 0 {
		t.Errorf("P50 = %v, want 0 with a single line", s.P50)
	}
}

func TestLineLatency_UniformGaps(t *testing.T) {
	l := NewLineLatency()

	base := time.Now()
	for i := 0; i < 10; i++ {
		l.Observe(base.Add(time.Duration(i) * 10 * time.Millisecond))
	}

	s := l.Summary()
	if s.Lines != 10 {
		t.Errorf("Lines = %d, want 10", s.Lines)
	}

	// All gaps are exactly 10ms, so every percentile should be close.
	for _, p := range []time.Duration{s.P50, s.P90, s.P99} {
		if p < 9*time.Millisecond || p > 11*time.Millisecond {
			t.Errorf("percentile = %v, want ~10ms", p)
		}
	}
}

func TestLineLatency_PercentilesOrdered(t *testing.T) {
	l := NewLineLatency()

	// Mostly fast lines with one long stall.
	now := time.Now()
	l.Observe(now)
	for i := 0; i < 99; i++ {
		now = now.Add(time.Millisecond)
		l.Observe(now)
	}
	now = now.Add(time.Second)
	l.Observe(now)

	s := l.Summary()
	if s.P50 > s.P90 || s.P90 > s.P99 {
		t.Errorf("percentiles should be non-decreasing: %+v", s)
	}
	if s.P99 < 10*time.Millisecond {
		t.Errorf("P99 = %v, should reflect the stall", s.P99)
	}
}

func TestLineLatency_Lines(t *testing.T) {
	l := NewLineLatency()
	for i := 0; i < 5; i++ {
		l.Observe(time.Now())
	}
	if got := l.Lines(); got != 5 {
		t.Errorf("Lines() = %d, want 5", got)
	}
}
