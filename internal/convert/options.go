package convert

import (
	"github.com/RevCBH/decomposerize/internal/compose"
	"go.uber.org/zap"
)

const (
	DefaultDockerRunCommand  = "docker run"
	DefaultArgValueSeparator = " "
	DefaultEngine            = "docker"
)

// Options controls which commands are generated and how they are spelled.
// A zero Options is valid; empty strings fall back to the defaults.
type Options struct {
	// Services limits output to the named services. Empty means all.
	Services []string

	// StopAndRemoveContainers emits "stop" and "rm" for every service.
	StopAndRemoveContainers bool

	// CreateVolumes emits "volume create" for every top-level volume.
	CreateVolumes bool

	// CreateNetworks emits "network create" for every top-level network.
	CreateNetworks bool

	// DockerRun emits one run command per service.
	DockerRun bool

	// DockerBuild emits "build" for every service with a build section.
	DockerBuild bool

	// DeleteImages emits "rmi" for every service that names an image.
	DeleteImages bool

	// DockerRunCommand is the verb prefix of run commands, e.g. "docker create".
	DockerRunCommand string

	// DockerRunRm adds --rm to run commands.
	DockerRunRm bool

	// DockerRunDetach adds -d (or --detach) to run commands.
	DockerRunDetach bool

	// Multiline puts every run argument on its own continuation line.
	Multiline bool

	// LongArgs prefers --publish over -p where both exist.
	LongArgs bool

	// ArgValueSeparator sits between a flag and its value: " " or "=".
	ArgValueSeparator string

	// Engine is the binary used for stop, rm, rmi, build, network and volume
	// commands.
	Engine string

	// Lookup, when set, enables ${VAR} interpolation in ConvertYAML.
	Lookup compose.LookupFunc

	// Logger receives debug diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns Options with every documented default applied.
func DefaultOptions() Options {
	return Options{
		Services:          []string{},
		DockerRunCommand:  DefaultDockerRunCommand,
		ArgValueSeparator: DefaultArgValueSeparator,
		Engine:            DefaultEngine,
	}
}

func (o Options) withDefaults() Options {
	if o.DockerRunCommand == "" {
		o.DockerRunCommand = DefaultDockerRunCommand
	}
	if o.ArgValueSeparator == "" {
		o.ArgValueSeparator = DefaultArgValueSeparator
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
