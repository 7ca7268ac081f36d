// Package convert turns a normalized compose document into container engine
// command lines.
package convert

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RevCBH/decomposerize/internal/compose"
	"go.uber.org/zap"
)

// InvalidCompose is returned in place of commands when the services section
// is not a mapping.
const InvalidCompose = "# invalid Docker Compose"

// ConvertYAML parses, optionally interpolates, normalizes and converts
// compose text.
func ConvertYAML(src []byte, opts Options) (string, error) {
	doc, err := compose.Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse compose file: %w", err)
	}
	if opts.Lookup != nil {
		if err := compose.Interpolate(doc, opts.Lookup); err != nil {
			return "", fmt.Errorf("interpolate compose file: %w", err)
		}
	}
	compose.Normalize(doc)
	return Convert(doc, opts), nil
}

// Convert renders the commands for doc, one per line, in the order:
// network create, volume create, stop/rm, rmi, build, run.
// A missing services section yields "" and a malformed one InvalidCompose.
func Convert(doc *compose.Document, opts Options) string {
	opts = opts.withDefaults()
	log := opts.Logger

	services := doc.Section("services")
	if services.IsNull() {
		return ""
	}
	if !services.IsMapping() {
		log.Debug("services section is not a mapping", zap.Stringer("shape", services.Shape))
		return InvalidCompose
	}
	services = filterServices(services, opts.Services, log)

	var commands []string

	if opts.CreateNetworks {
		if networks := doc.Section("networks"); networks.IsMapping() {
			for _, f := range networks.Fields {
				commands = append(commands, networkCommand(f.Key, f.Value, opts))
			}
		}
	}

	if opts.CreateVolumes {
		if volumes := doc.Section("volumes"); volumes.IsMapping() {
			for _, f := range volumes.Fields {
				commands = append(commands, volumeCommand(f.Key, f.Value, opts))
			}
		}
	}

	if opts.StopAndRemoveContainers {
		for _, f := range services.Fields {
			name := containerName(f.Key, f.Value)
			commands = append(commands,
				joinCommand(opts.Engine+" stop", []string{name}, opts),
				joinCommand(opts.Engine+" rm", []string{name}, opts),
			)
		}
	}

	if opts.DeleteImages {
		for _, f := range services.Fields {
			if image := f.Value.Get("image"); image.Truthy() {
				commands = append(commands, joinCommand(opts.Engine+" rmi", []string{image.String()}, opts))
			}
		}
	}

	if opts.DockerBuild {
		for _, f := range services.Fields {
			if line, ok := buildCommand(f.Key, f.Value, opts); ok {
				commands = append(commands, line)
			}
		}
	}

	if opts.DockerRun {
		for _, f := range services.Fields {
			if line, ok := runCommand(f.Key, f.Value, opts); ok {
				commands = append(commands, line)
			}
		}
	}

	log.Debug("converted compose document",
		zap.Int("services", services.Len()),
		zap.Int("commands", len(commands)))

	return strings.Join(commands, "\n")
}

// filterServices keeps the services named in allow, in document order. An
// empty allow list keeps everything. The input is not modified.
func filterServices(services *compose.Node, allow []string, log *zap.Logger) *compose.Node {
	if len(allow) == 0 {
		return services
	}
	for _, name := range allow {
		if !services.Has(name) {
			log.Debug("requested service not found", zap.String("service", name))
		}
	}

	filtered := compose.Map()
	for _, f := range services.Fields {
		if slices.Contains(allow, f.Key) {
			filtered.Fields = append(filtered.Fields, f)
		}
	}
	return filtered
}
