// Package stats tracks output timing statistics for streaming mode.
//
// Inter-line arrival gaps are fed into a t-digest, giving percentiles for
// the exit summary without storing every sample.
package stats

import (
	"sync"
	"time"

	"github.com/influxdata/tdigest"
)

// LineLatency tracks the gaps between consecutive streamed lines.
//
// Thread-safe: Observe may be called from the runner's streaming loop while
// Summary is read elsewhere.
type LineLatency struct {
	mu     sync.Mutex
	digest *tdigest.TDigest
	last   time.Time
	lines  int64
	gaps   int64
}

// NewLineLatency creates an empty tracker.
func NewLineLatency() *LineLatency {
	return &LineLatency{
		digest: tdigest.NewWithCompression(100), // ~100 centroids, ~10KB
	}
}

// Observe records a line arrival. The first observation only anchors the
// clock; every later one adds a gap sample.
func (l *LineLatency) Observe(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines++
	if !l.last.IsZero() {
		l.digest.Add(now.Sub(l.last).Seconds(), 1)
		l.gaps++
	}
	l.last = now
}

// Lines returns the number of observed lines.
func (l *LineLatency) Lines() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lines
}

// Summary holds line arrival percentiles for the exit summary.
type Summary struct {
	Lines int64
	P50   time.Duration
	P90   time.Duration
	P99   time.Duration
}

// Summary returns the current percentiles. With fewer than two lines there
// are no gap samples and the durations are zero.
func (l *LineLatency) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Summary{Lines: l.lines}
	if l.gaps == 0 {
		return s
	}

	s.P50 = secondsToDuration(l.digest.Quantile(0.50))
	s.P90 = secondsToDuration(l.digest.Quantile(0.90))
	s.P99 = secondsToDuration(l.digest.Quantile(0.99))
	return s
}

func secondsToDuration(s float64) time.Duration {
	if s < 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
