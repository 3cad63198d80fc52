// Package metrics provides Prometheus metrics for go-spinrun.
//
// Metrics are registered on the default registerer and exposed by the
// optional -metrics server. The Collector implements the runner's event
// hooks so the core stays free of any metrics dependency.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spinrun_runs_total",
			Help: "Completed runs by outcome (success, failure)",
		},
		[]string{"outcome"},
	)

	runDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spinrun_run_duration_seconds",
			Help:    "Wall-clock duration of child processes",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms .. ~80s
		},
	)

	lastExitCode = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "spinrun_last_exit_code",
			Help: "Exit code of the most recent run (value always 1)",
		},
		[]string{"exit_code"},
	)

	linesStreamedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spinrun_lines_streamed_total",
			Help: "Child stdout lines consumed in streaming mode",
		},
	)

	indicatorTicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spinrun_indicator_ticks_total",
			Help: "Progress pattern invocations in indicator mode",
		},
	)
)

var registerOnce sync.Once

// Register registers all metrics with the default registerer.
// Safe to call multiple times.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			runsTotal,
			runDurationSeconds,
			lastExitCode,
			linesStreamedTotal,
			indicatorTicksTotal,
		)
	})
}

// Collector records run events into the registered metrics. Its methods
// match the runner callback signatures.
type Collector struct{}

// NewCollector registers the metrics and returns a Collector.
func NewCollector() *Collector {
	Register()
	return &Collector{}
}

// ProcessExited records the outcome, duration, and exit code of a run.
func (c *Collector) ProcessExited(exitCode int, uptime time.Duration) {
	outcome := "success"
	if exitCode != 0 {
		outcome = "failure"
	}
	runsTotal.WithLabelValues(outcome).Inc()
	runDurationSeconds.Observe(uptime.Seconds())

	lastExitCode.Reset()
	lastExitCode.WithLabelValues(strconv.Itoa(exitCode)).Set(1)
}

// LineStreamed records one streamed stdout line.
func (c *Collector) LineStreamed(string) {
	linesStreamedTotal.Inc()
}

// IndicatorTick records one pattern invocation.
func (c *Collector) IndicatorTick() {
	indicatorTicksTotal.Inc()
}
