// Package discovery locates the compose file for a working directory when
// none is named on the command line.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileNames are checked in order in each directory.
var DefaultFileNames = []string{
	"compose.yaml",
	"compose.yml",
	"docker-compose.yaml",
	"docker-compose.yml",
}

// ErrNoComposeFile is returned when no directory up to the filesystem root
// holds a compose file.
var ErrNoComposeFile = errors.New("no compose file found")

// FindComposeFile returns the first default compose file in dir or its
// closest ancestor that has one.
func FindComposeFile(dir string) (string, error) {
	// Verify dir exists and is a directory
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("search directory error: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("search path is not a directory: %s", dir)
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		path, err := findInDir(dir)
		if err != nil {
			return "", err
		}
		if path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoComposeFile
		}
		dir = parent
	}
}

// findInDir returns the first default file in dir, or "" if there is none.
func findInDir(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("error checking %s: %w", path, err)
		}
		if info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", nil
}
