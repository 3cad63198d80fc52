// Package config provides configuration management for go-spinrun.
package config

import "time"

// Pattern names accepted by the -pattern flag.
const (
	PatternDots    = "dots"
	PatternSpinner = "spinner"
)

// Config holds all configuration options for a run.
type Config struct {
	// Command
	Args []string `json:"args"` // command and arguments (positional)
	Dir  string   `json:"dir"`  // working directory ("" = inherit)
	Env  []string `json:"env"`  // extra KEY=VALUE entries appended to the environment

	// Indicator
	Pattern  string        `json:"pattern"`  // dots, spinner
	Interval time.Duration `json:"interval"` // pattern pause per beat

	// Observability
	Verbose     bool   `json:"verbose"`      // debug logging; streams child stdout instead of the indicator
	LogFormat   string `json:"log_format"`   // json, text
	LogLevel    string `json:"log_level"`    // debug, info, warn, error
	MetricsAddr string `json:"metrics_addr"` // "" = metrics server disabled

	// Display
	TUIEnabled bool `json:"tui"`

	// Diagnostic modes
	PrintCmd bool `json:"print_cmd"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Pattern:  PatternDots,
		Interval: 500 * time.Millisecond,

		Verbose:     false,
		LogFormat:   "text",
		LogLevel:    "info",
		MetricsAddr: "", // Disabled

		TUIEnabled: false,
	}
}
