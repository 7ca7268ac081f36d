package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RevCBH/decomposerize/internal/convert"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the working
// directory.
const FileName = ".decomposerize.yaml"

// EngineAuto asks the CLI to detect the engine from the installed runtimes.
const EngineAuto = "auto"

// Config holds the persistent defaults for a decomposerize invocation.
// Command-line flags are applied on top by the CLI.
type Config struct {
	// Engine is the binary used for stop, rm, rmi, build, network and volume
	// commands: "docker", "podman", or "auto" to detect it
	Engine string `yaml:"engine"`

	// DockerRunCommand is the verb prefix of run commands
	DockerRunCommand string `yaml:"docker_run_command"`

	// ArgValueSeparator sits between a flag and its value: " " or "="
	ArgValueSeparator string `yaml:"arg_value_separator"`

	// LongArgs prefers --publish over -p
	LongArgs bool `yaml:"long_args"`

	// Multiline puts each run argument on its own continuation line
	Multiline bool `yaml:"multiline"`

	// Run contains the run command modifiers
	Run RunConfig `yaml:"run"`

	// Output selects which command groups are generated
	Output OutputConfig `yaml:"output"`

	// Interpolation controls ${VAR} expansion in the compose file
	Interpolation InterpolationConfig `yaml:"interpolation"`

	// LogLevel controls diagnostic verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// RunConfig holds modifiers applied to every run command.
type RunConfig struct {
	// Rm adds --rm
	Rm bool `yaml:"rm"`

	// Detach adds -d
	Detach bool `yaml:"detach"`
}

// OutputConfig selects which command groups are generated.
type OutputConfig struct {
	DockerRun      bool `yaml:"docker_run"`
	DockerBuild    bool `yaml:"docker_build"`
	StopAndRemove  bool `yaml:"stop_and_remove"`
	CreateVolumes  bool `yaml:"create_volumes"`
	CreateNetworks bool `yaml:"create_networks"`
	DeleteImages   bool `yaml:"delete_images"`
}

// InterpolationConfig controls ${VAR} expansion.
type InterpolationConfig struct {
	// Enabled turns interpolation on
	Enabled bool `yaml:"enabled"`

	// EnvFiles are dotenv files overlaid under the process environment.
	// Relative paths are resolved from the directory holding the config.
	EnvFiles []string `yaml:"env_files"`
}

// RenderOptions converts the config into converter options. The service
// allow-list, lookup and logger are left for the caller.
func (c *Config) RenderOptions() convert.Options {
	opts := convert.DefaultOptions()
	opts.Engine = c.Engine
	opts.DockerRunCommand = c.DockerRunCommand
	opts.ArgValueSeparator = c.ArgValueSeparator
	opts.LongArgs = c.LongArgs
	opts.Multiline = c.Multiline
	opts.DockerRunRm = c.Run.Rm
	opts.DockerRunDetach = c.Run.Detach
	opts.DockerRun = c.Output.DockerRun
	opts.DockerBuild = c.Output.DockerBuild
	opts.StopAndRemoveContainers = c.Output.StopAndRemove
	opts.CreateVolumes = c.Output.CreateVolumes
	opts.CreateNetworks = c.Output.CreateNetworks
	opts.DeleteImages = c.Output.DeleteImages
	return opts
}

// LoadConfig loads configuration for the given working directory.
// It applies defaults, then the user config file, then the project file,
// then environment overrides, then validates.
//
// Missing files are not an error.
func LoadConfig(dir string) (*Config, error) {
	return loadConfig(UserConfigPath(), filepath.Join(dir, FileName))
}

func loadConfig(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// mergeFile unmarshals the file at path over cfg. Env files listed in the
// file replace earlier ones and are resolved against its directory.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	inherited := cfg.Interpolation.EnvFiles
	cfg.Interpolation.EnvFiles = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.Interpolation.EnvFiles) == 0 {
		cfg.Interpolation.EnvFiles = inherited
		return nil
	}
	base := filepath.Dir(path)
	for i, f := range cfg.Interpolation.EnvFiles {
		if f != "" && !filepath.IsAbs(f) {
			cfg.Interpolation.EnvFiles[i] = filepath.Join(base, f)
		}
	}
	return nil
}
