// Package container locates the container engine whose CLI the generated
// commands target.
package container

import (
	"context"
	"errors"
	"os/exec"
)

// ErrNoRuntime is returned when no container runtime is found.
var ErrNoRuntime = errors.New("no container runtime found (need docker or podman)")

// DefaultRuntimes is the detection order.
var DefaultRuntimes = []string{"docker", "podman"}

// Detector finds an installed runtime. The zero value checks the PATH and
// runs `<runtime> version`.
type Detector struct {
	// LookPath resolves a binary name. Defaults to exec.LookPath.
	LookPath func(string) (string, error)

	// Probe verifies the binary works. Defaults to running `<path> version`.
	Probe func(ctx context.Context, path string) error
}

// Detect returns the first of candidates that is installed and working.
// With no candidates DefaultRuntimes is used.
func (d Detector) Detect(ctx context.Context, candidates ...string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultRuntimes
	}
	lookPath := d.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	probe := d.Probe
	if probe == nil {
		probe = runVersion
	}

	for _, bin := range candidates {
		path, err := lookPath(bin)
		if err != nil {
			continue
		}
		if err := probe(ctx, path); err != nil {
			continue
		}
		return bin, nil
	}
	return "", ErrNoRuntime
}

func runVersion(ctx context.Context, path string) error {
	return exec.CommandContext(ctx, path, "version").Run()
}
