package compose

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML is returned when the input is not well-formed YAML.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrInterpolation is returned when a ${VAR} expression cannot be expanded.
	ErrInterpolation = errors.New("invalid interpolation")

	// ErrEnvFile is returned when an env file cannot be read.
	ErrEnvFile = errors.New("cannot read env file")
)

// ParseError wraps errors with context about where processing failed.
type ParseError struct {
	Field   string // e.g., "services.web.environment.FOO"
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(field, message string, err error) *ParseError {
	return &ParseError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
