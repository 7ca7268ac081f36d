package convert

import (
	"strings"

	"github.com/RevCBH/decomposerize/internal/compose"
	"github.com/RevCBH/decomposerize/internal/mapping"
	"go.uber.org/zap"
)

const networkFlag = "network/net"

// Service keys consumed by the run assembler outside the mapping table, or
// meaningless for a single container.
var handledKeys = map[string]bool{
	"image":      true,
	"command":    true,
	"build":      true,
	"depends_on": true,
	"profiles":   true,
	"scale":      true,
	"extends":    true,
}

// runCommand renders the run command for one service. The second result is
// false when the service names neither an image nor a build.
func runCommand(name string, svc *compose.Node, opts Options) (string, bool) {
	image := imageName(name, svc)
	if image == "" {
		opts.Logger.Debug("service has neither image nor build", zap.String("service", name))
		return "", false
	}

	a := &args{opts: opts}
	if opts.DockerRunRm {
		a.raw("--rm")
	}
	if opts.DockerRunDetach {
		if opts.LongArgs {
			a.raw("--detach")
		} else {
			a.raw("-d")
		}
	}

	if mode := svc.Get("network_mode"); mode.Truthy() {
		a.flag(networkFlag, mode.String())
	} else if networks := svc.Get("networks"); networks.Truthy() {
		for _, e := range networks.Entries() {
			network := e.Key
			if e.Value.IsString() {
				network = e.Value.String()
			}
			a.flag(networkFlag, network)
		}
	}

	for _, key := range svc.Keys() {
		matched := false
		for _, e := range mapping.Table {
			if e.Root() != key {
				continue
			}
			matched = true

			v := compose.Resolve(e.Path, svc)
			if e.Kind.SkipFalsy() && !v.Truthy() {
				continue
			}
			for _, tok := range mapping.Render(e.Kind, v) {
				a.flag(e.Names, tok)
			}
		}
		if !matched && !handledKeys[key] {
			opts.Logger.Debug("no run flag for service key",
				zap.String("service", name), zap.String("key", key))
		}
	}

	a.raw(image)

	if cmd := svc.Get("command"); cmd.Truthy() {
		a.raw(inlineCommand(cmd))
	}

	return a.line(opts.DockerRunCommand), true
}

// imageName is the image a service runs: its image key, or for build-only
// services the service name, which is the tag the build command assigns.
func imageName(name string, svc *compose.Node) string {
	if image := svc.Get("image"); image.Truthy() {
		return image.String()
	}
	if svc.Get("build").Truthy() {
		return name
	}
	return ""
}

// inlineCommand renders a command given as a string verbatim and one given
// in exec form as quoted, space-separated words.
func inlineCommand(cmd *compose.Node) string {
	if !cmd.IsSequence() {
		return cmd.String()
	}
	words := make([]string, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		if item.IsNull() {
			continue
		}
		words = append(words, mapping.Quote(item.String()))
	}
	return strings.Join(words, " ")
}
