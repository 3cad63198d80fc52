package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// envList is a custom flag type for repeatable -env flags.
type envList []string

func (e *envList) String() string {
	return strings.Join(*e, ", ")
}

func (e *envList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected KEY=VALUE, got %q", value)
	}
	*e = append(*e, value)
	return nil
}

// ParseFlags parses command-line flags and returns a Config.
// Everything after the flags (or after "--") is the command to run.
func ParseFlags() (*Config, error) {
	cfg := DefaultConfig()
	var env envList

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `go-spinrun - run a command with a live progress indicator

Usage:
  go-spinrun [flags] [--] <command> [args...]

While the command runs, go-spinrun prints a progress pattern to stderr and
captures the command's stdout. With -v, the indicator is replaced by the
command's stdout streamed line by line at debug level.

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Show dots while a slow build runs, print its output at the end
  go-spinrun -- make release

  # Spinner with a faster beat
  go-spinrun -pattern spinner -interval 100ms -- terraform plan

  # Stream output live instead of showing an indicator
  go-spinrun -v -- npm install

`)
	}

	// Command
	flag.StringVar(&cfg.Dir, "cwd", cfg.Dir, "Working directory for the command")
	flag.Var(&env, "env", "Extra KEY=VALUE for the command environment (can repeat)")

	// Indicator
	flag.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, `Progress pattern: "dots" or "spinner"`)
	flag.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Pattern pause per beat")

	// Observability
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose: debug logging, stream command output live")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `Log format: "json" or "text"`)
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "Prometheus metrics address (empty = disabled)")

	// Display
	flag.BoolVar(&cfg.TUIEnabled, "tui", cfg.TUIEnabled, "Show a live terminal view while the command runs")

	// Diagnostics
	flag.BoolVar(&cfg.PrintCmd, "print-cmd", cfg.PrintCmd, "Print the command that would run and exit")

	flag.Parse()

	cfg.Env = env
	cfg.Args = flag.Args()

	return cfg, nil
}
