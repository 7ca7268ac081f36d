package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the per-user config file, e.g.
// ~/.config/decomposerize/config.yaml. It returns "" when no user config
// directory can be determined.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "decomposerize", "config.yaml")
}
