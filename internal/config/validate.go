package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors and inconsistencies.
// Returns nil if valid, or an error describing the problem.
func Validate(cfg *Config) error {
	var errs []error

	// A command is required
	if len(cfg.Args) == 0 {
		errs = append(errs, ValidationError{
			Field:   "args",
			Message: "a command to run is required",
		})
	}

	// Pattern must be known
	switch cfg.Pattern {
	case PatternDots, PatternSpinner:
	default:
		errs = append(errs, ValidationError{
			Field:   "pattern",
			Message: fmt.Sprintf("unknown pattern %q (want %q or %q)", cfg.Pattern, PatternDots, PatternSpinner),
		})
	}

	// Interval must be positive
	if cfg.Interval <= 0 {
		errs = append(errs, ValidationError{
			Field:   "interval",
			Message: "must be positive",
		})
	}

	// Log format must be valid
	switch cfg.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   "log_format",
			Message: fmt.Sprintf("unknown format %q (want \"json\" or \"text\")", cfg.LogFormat),
		})
	}

	return errors.Join(errs...)
}
