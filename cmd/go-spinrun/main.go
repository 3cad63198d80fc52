// Package main provides the go-spinrun CLI entry point.
//
// go-spinrun runs a single command, shows a progress indicator (or streams
// the command's output at debug verbosity), captures stdout, and propagates
// the command's exit status.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/randomizedcoder/go-spinrun/internal/config"
	"github.com/randomizedcoder/go-spinrun/internal/logging"
	"github.com/randomizedcoder/go-spinrun/internal/metrics"
	"github.com/randomizedcoder/go-spinrun/internal/pattern"
	"github.com/randomizedcoder/go-spinrun/internal/runner"
	"github.com/randomizedcoder/go-spinrun/internal/sink"
	"github.com/randomizedcoder/go-spinrun/internal/stats"
	"github.com/randomizedcoder/go-spinrun/internal/tui"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/go-spinrun
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle version flag early (before flag parsing)
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-version" || arg == "--version" || arg == "version" {
			fmt.Printf("go-spinrun %s\n", version)
			return 0
		}
	}

	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return 1
	}

	// When the TUI is enabled, suppress logs to avoid interfering with
	// its rendering.
	var logger *slog.Logger
	if cfg.TUIEnabled {
		logger = logging.NewLoggerWithWriter(io.Discard, cfg.LogFormat, "info")
	} else {
		logger = logging.NewLogger(cfg.LogFormat, cfg.LogLevel, cfg.Verbose)
	}
	logging.SetDefault(logger)

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		flagUsageHint()
		return 1
	}

	if cfg.PrintCmd {
		fmt.Println(strings.Join(cfg.Args, " "))
		return 0
	}

	collector := metrics.NewCollector()
	lineLatency := stats.NewLineLatency()

	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr, logger)
		if _, err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting metrics server: %v\n", err)
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	// Debug verbosity streams the command's output instead of the indicator.
	mode := runner.ModeIndicator
	if cfg.Verbose {
		mode = runner.ModeStream
	}

	runnerCfg := runner.Config{
		Mode:    mode,
		Pattern: selectPattern(cfg),
		Sink:    sink.Stderr(),
		Logger:  logger,
		Callbacks: runner.Callbacks{
			OnExit: collector.ProcessExited,
			OnTick: collector.IndicatorTick,
			OnLine: func(line string) {
				collector.LineStreamed(line)
				lineLatency.Observe(time.Now())
			},
		},
	}

	inv := runner.Invocation{
		Args: cfg.Args,
		Dir:  cfg.Dir,
		Env:  commandEnv(cfg.Env),
	}

	var output string
	var runErr error
	if cfg.TUIEnabled {
		output, runErr = tui.Run(context.Background(), runnerCfg, inv)
	} else {
		r := runner.New(runnerCfg)
		output, runErr = r.Run(context.Background(), inv)
	}

	logSummary(logger, lineLatency)

	if runErr != nil {
		logger.Error("run_failed", "error", runErr)
		var execErr *runner.ExecError
		if errors.As(runErr, &execErr) && execErr.ExitCode != 0 {
			return execErr.ExitCode
		}
		return 1
	}

	if output != "" {
		fmt.Println(output)
	}
	return 0
}

// selectPattern maps the configured pattern name to a progress callback.
func selectPattern(cfg *config.Config) pattern.Pattern {
	switch cfg.Pattern {
	case config.PatternSpinner:
		return pattern.Spinner(cfg.Interval)
	default:
		return pattern.Dots(cfg.Interval)
	}
}

// commandEnv returns the child environment: the parent's, plus any extra
// entries. Nil when there is nothing extra, so exec inherits directly.
func commandEnv(extra []string) []string {
	if len(extra) == 0 {
		return nil
	}
	return append(os.Environ(), extra...)
}

// logSummary emits the debug exit summary: metric snapshot plus stream
// latency percentiles.
func logSummary(logger *slog.Logger, lineLatency *stats.LineLatency) {
	snap, err := metrics.TakeSnapshot()
	if err != nil {
		logger.Debug("metrics_snapshot_failed", "error", err)
		return
	}

	attrs := []any{
		"successes", snap.Successes,
		"failures", snap.Failures,
		"lines_streamed", snap.LinesStreamed,
		"indicator_ticks", snap.IndicatorTicks,
		"duration_seconds", snap.DurationSum,
	}

	if summary := lineLatency.Summary(); summary.Lines > 1 {
		attrs = append(attrs,
			"line_gap_p50", summary.P50.String(),
			"line_gap_p90", summary.P90.String(),
			"line_gap_p99", summary.P99.String(),
		)
	}

	logger.Debug("run_summary", attrs...)
}

func flagUsageHint() {
	fmt.Fprintln(os.Stderr, `Run "go-spinrun -h" for usage.`)
}
