package config

import "github.com/RevCBH/decomposerize/internal/convert"

const (
	DefaultEngine            = convert.DefaultEngine
	DefaultDockerRunCommand  = convert.DefaultDockerRunCommand
	DefaultArgValueSeparator = convert.DefaultArgValueSeparator
	DefaultLogLevel          = "info"
)

// DefaultConfig returns a Config with all default values applied.
// Every output group starts disabled.
func DefaultConfig() *Config {
	return &Config{
		Engine:            DefaultEngine,
		DockerRunCommand:  DefaultDockerRunCommand,
		ArgValueSeparator: DefaultArgValueSeparator,
		LogLevel:          DefaultLogLevel,
	}
}
