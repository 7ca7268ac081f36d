// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

var configEnvVars = []string{
	"DECOMPOSERIZE_ENGINE",
	"DECOMPOSERIZE_RUN_COMMAND",
	"DECOMPOSERIZE_SEPARATOR",
	"DECOMPOSERIZE_LONG_ARGS",
	"DECOMPOSERIZE_MULTILINE",
	"DECOMPOSERIZE_LOG_LEVEL",
}

// IsolateConfig clears the environment overrides and points the user config
// directory at an empty temp dir for the rest of the test.
func IsolateConfig(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
