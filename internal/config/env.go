package config

import (
	"fmt"
	"os"
	"strconv"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string) error
}{
	{
		envVar: "DECOMPOSERIZE_ENGINE",
		apply: func(c *Config, v string) error {
			c.Engine = v
			return nil
		},
	},
	{
		envVar: "DECOMPOSERIZE_RUN_COMMAND",
		apply: func(c *Config, v string) error {
			c.DockerRunCommand = v
			return nil
		},
	},
	{
		envVar: "DECOMPOSERIZE_SEPARATOR",
		apply: func(c *Config, v string) error {
			c.ArgValueSeparator = v
			return nil
		},
	},
	{
		envVar: "DECOMPOSERIZE_LONG_ARGS",
		apply: func(c *Config, v string) error {
			return setBool(&c.LongArgs, v)
		},
	},
	{
		envVar: "DECOMPOSERIZE_MULTILINE",
		apply: func(c *Config, v string) error {
			return setBool(&c.Multiline, v)
		},
	},
	{
		envVar: "DECOMPOSERIZE_LOG_LEVEL",
		apply: func(c *Config, v string) error {
			c.LogLevel = v
			return nil
		},
	},
}

func setBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// applyEnvOverrides modifies config in place with environment variable values.
// Empty variables are ignored.
func applyEnvOverrides(cfg *Config) error {
	for _, override := range envOverrides {
		val := os.Getenv(override.envVar)
		if val == "" {
			continue
		}
		if err := override.apply(cfg, val); err != nil {
			return fmt.Errorf("%s: %w", override.envVar, err)
		}
	}
	return nil
}
