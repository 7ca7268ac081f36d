package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %q)", e.Field, e.Message, fmt.Sprint(e.Value))
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.Engine == "" {
		errs = append(errs, &ValidationError{
			Field:   "engine",
			Value:   cfg.Engine,
			Message: "must not be empty",
		})
	}

	if cfg.DockerRunCommand == "" {
		errs = append(errs, &ValidationError{
			Field:   "docker_run_command",
			Value:   cfg.DockerRunCommand,
			Message: "must not be empty",
		})
	}

	// Only a space or "=" is understood by the engines' flag parsers
	if cfg.ArgValueSeparator != " " && cfg.ArgValueSeparator != "=" {
		errs = append(errs, &ValidationError{
			Field:   "arg_value_separator",
			Value:   cfg.ArgValueSeparator,
			Message: `must be " " or "="`,
		})
	}

	// LogLevel must be one of: debug, info, warn, error (case-sensitive)
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	for i, f := range cfg.Interpolation.EnvFiles {
		if f == "" {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("interpolation.env_files[%d]", i),
				Value:   f,
				Message: "must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks cfg after command-line overrides have been applied.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}
