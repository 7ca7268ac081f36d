package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/RevCBH/decomposerize/internal/compose"
	"github.com/RevCBH/decomposerize/internal/config"
	"github.com/RevCBH/decomposerize/internal/convert"
	"github.com/RevCBH/decomposerize/internal/discovery"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// ErrNoInput is returned when no file is given, stdin is a terminal and no
// compose file is found from the working directory up.
var ErrNoInput = errors.New("no input: pass a compose file or pipe one on stdin")

// RunOptions holds flags for the root command
type RunOptions struct {
	Services          []string // Services to include (default: all)
	DockerRun         bool     // Emit run commands
	DockerRunCommand  string   // Run verb, e.g. "docker create"
	DockerRunRm       bool     // Add --rm to run commands
	DockerRunDetach   bool     // Add -d to run commands
	DockerBuild       bool     // Emit build commands
	StopAndRemove     bool     // Emit stop and rm commands
	CreateVolumes     bool     // Emit volume create commands
	CreateNetworks    bool     // Emit network create commands
	DeleteImages      bool     // Emit rmi commands
	Multiline         bool     // One run argument per line
	LongArgs          bool     // Prefer long flag names
	ArgValueSeparator string   // " " or "="
	Engine            string   // Binary for non-run commands
	DetectEngine      bool     // Pick docker or podman from PATH
	Interpolate       bool     // Expand ${VAR} references
	EnvFiles          []string // Dotenv files for interpolation
	Pick              bool     // Choose services interactively
}

// flagOverrides maps explicitly set flags to config field setters.
var flagOverrides = []struct {
	flag  string
	apply func(*config.Config, *RunOptions)
}{
	{"docker-run", func(c *config.Config, o *RunOptions) { c.Output.DockerRun = o.DockerRun }},
	{"docker-build", func(c *config.Config, o *RunOptions) { c.Output.DockerBuild = o.DockerBuild }},
	{"stop-and-remove", func(c *config.Config, o *RunOptions) { c.Output.StopAndRemove = o.StopAndRemove }},
	{"create-volumes", func(c *config.Config, o *RunOptions) { c.Output.CreateVolumes = o.CreateVolumes }},
	{"create-networks", func(c *config.Config, o *RunOptions) { c.Output.CreateNetworks = o.CreateNetworks }},
	{"delete-images", func(c *config.Config, o *RunOptions) { c.Output.DeleteImages = o.DeleteImages }},
	{"docker-run-command", func(c *config.Config, o *RunOptions) { c.DockerRunCommand = o.DockerRunCommand }},
	{"docker-run-rm", func(c *config.Config, o *RunOptions) { c.Run.Rm = o.DockerRunRm }},
	{"docker-run-detach", func(c *config.Config, o *RunOptions) { c.Run.Detach = o.DockerRunDetach }},
	{"multiline", func(c *config.Config, o *RunOptions) { c.Multiline = o.Multiline }},
	{"long-args", func(c *config.Config, o *RunOptions) { c.LongArgs = o.LongArgs }},
	{"arg-value-separator", func(c *config.Config, o *RunOptions) { c.ArgValueSeparator = o.ArgValueSeparator }},
	{"engine", func(c *config.Config, o *RunOptions) { c.Engine = o.Engine }},
	{"interpolate", func(c *config.Config, o *RunOptions) { c.Interpolation.Enabled = o.Interpolate }},
	{"env-file", func(c *config.Config, o *RunOptions) {
		c.Interpolation.EnvFiles = o.EnvFiles
		c.Interpolation.Enabled = true
	}},
}

// applyFlagOverrides copies every flag the user set onto cfg.
func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet, opts *RunOptions) {
	for _, override := range flagOverrides {
		if flags.Changed(override.flag) {
			override.apply(cfg, opts)
		}
	}
}

// NewRootCmd creates the root command, which converts a compose file
func NewRootCmd(app *App) *cobra.Command {
	opts := RunOptions{
		DockerRunCommand:  config.DefaultDockerRunCommand,
		ArgValueSeparator: config.DefaultArgValueSeparator,
		Engine:            config.DefaultEngine,
	}

	cmd := &cobra.Command{
		Use:   "decomposerize [file]",
		Short: "Convert a Docker Compose file into docker commands",
		Long: `Decomposerize reads a Docker Compose file and prints the equivalent
docker run, build, network, volume, stop and rm commands.

The file is read from the path given, or from standard input when the path
is "-" or stdin is piped. Otherwise compose.yaml, compose.yml,
docker-compose.yaml or docker-compose.yml is looked up from the current
directory upward. Nothing is generated unless at least one of --docker-run,
--docker-build, --stop-and-remove, --create-volumes, --create-networks or
--delete-images is set, on the command line or in .decomposerize.yaml.`,
		Example: `  decomposerize docker-compose.yml --docker-run
  cat compose.yaml | decomposerize --docker-run --long-args --multiline
  decomposerize compose.yaml --create-networks --create-volumes --docker-run --pick`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return app.Convert(ctx, cmd, file, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.Services, "services", nil, "Services to include, comma separated (default: all)")
	flags.BoolVar(&opts.DockerRun, "docker-run", false, "Emit docker run commands")
	flags.StringVar(&opts.DockerRunCommand, "docker-run-command", opts.DockerRunCommand, "Run command verb, e.g. 'docker create'")
	flags.BoolVar(&opts.DockerRunRm, "docker-run-rm", false, "Add --rm to run commands")
	flags.BoolVar(&opts.DockerRunDetach, "docker-run-detach", false, "Add -d to run commands")
	flags.BoolVar(&opts.DockerBuild, "docker-build", false, "Emit docker build commands")
	flags.BoolVar(&opts.StopAndRemove, "stop-and-remove", false, "Emit docker stop and docker rm commands")
	flags.BoolVar(&opts.CreateVolumes, "create-volumes", false, "Emit docker volume create commands")
	flags.BoolVar(&opts.CreateNetworks, "create-networks", false, "Emit docker network create commands")
	flags.BoolVar(&opts.DeleteImages, "delete-images", false, "Emit docker rmi commands")
	flags.BoolVar(&opts.Multiline, "multiline", false, "Put each run argument on its own line")
	flags.BoolVar(&opts.LongArgs, "long-args", false, "Use long flag names (--tty instead of -t)")
	flags.StringVar(&opts.ArgValueSeparator, "arg-value-separator", opts.ArgValueSeparator, `Separator between a flag and its value: " " or "="`)
	flags.StringVar(&opts.Engine, "engine", opts.Engine, `Engine binary for non-run commands, or "auto"`)
	flags.BoolVar(&opts.DetectEngine, "detect-engine", false, "Use docker or podman, whichever is installed")
	flags.BoolVar(&opts.Interpolate, "interpolate", false, "Expand ${VAR} references from the environment")
	flags.StringArrayVar(&opts.EnvFiles, "env-file", nil, "Dotenv file for interpolation (repeatable, implies --interpolate)")
	flags.BoolVar(&opts.Pick, "pick", false, "Choose services interactively")

	return cmd
}

// Convert loads configuration, reads the compose file and writes the
// generated commands to the command's stdout.
func (a *App) Convert(ctx context.Context, cmd *cobra.Command, file string, opts *RunOptions) error {
	wd, err := a.workDir()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfig(wd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cfg, cmd.Flags(), opts)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	logger, err := newLogger(stderr, cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	src, err := a.readInput(file, wd, logger)
	if err != nil {
		return err
	}

	doc, err := compose.Parse(src)
	if err != nil {
		return fmt.Errorf("parse compose file: %w", err)
	}
	if cfg.Interpolation.Enabled {
		env, err := compose.ReadEnvFiles(cfg.Interpolation.EnvFiles...)
		if err != nil {
			return fmt.Errorf("read env files: %w", err)
		}
		if err := compose.Interpolate(doc, compose.EnvLookup(env)); err != nil {
			return fmt.Errorf("interpolate compose file: %w", err)
		}
	}
	compose.Normalize(doc)

	if opts.DetectEngine || cfg.Engine == config.EngineAuto {
		engine, err := a.detector.Detect(ctx)
		if err != nil {
			return fmt.Errorf("detect engine: %w", err)
		}
		logger.Debug("detected container engine", zap.String("engine", engine))
		cfg.Engine = engine
	}
	if cfg.Engine != convert.DefaultEngine && cfg.DockerRunCommand == convert.DefaultDockerRunCommand {
		cfg.DockerRunCommand = cfg.Engine + " run"
	}

	render := cfg.RenderOptions()
	render.Services = opts.Services
	render.Logger = logger

	if opts.Pick {
		chosen, err := a.pick(doc, render.Services, stderr)
		if err != nil {
			return err
		}
		render.Services = chosen
	}

	display := NewDisplayConfig(stderr)
	for _, name := range missingServices(doc, render.Services) {
		fmt.Fprintln(stderr, FormatNotice(NoticeWarning, fmt.Sprintf("service %q not found", name), display))
	}

	out := convert.Convert(doc, render)
	if out == convert.InvalidCompose {
		fmt.Fprintln(stderr, FormatNotice(NoticeWarning, "services must be a mapping of service names to definitions", display))
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// readInput returns the compose text from file, or from stdin when file is
// "-" or empty. With no file and an interactive stdin, the default compose
// file is looked up from wd.
func (a *App) readInput(file, wd string, logger *zap.Logger) ([]byte, error) {
	if file == "" && a.stdinIsTerminal() {
		found, err := discovery.FindComposeFile(wd)
		if errors.Is(err, discovery.ErrNoComposeFile) {
			return nil, ErrNoInput
		}
		if err != nil {
			return nil, err
		}
		logger.Debug("using compose file", zap.String("path", found))
		file = found
	}

	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read compose file: %w", err)
		}
		return data, nil
	}

	if a.stdinIsTerminal() {
		return nil, ErrNoInput
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// missingServices lists the requested names the document does not define.
func missingServices(doc *compose.Document, requested []string) []string {
	services := doc.Section("services")
	if !services.IsMapping() {
		return nil
	}
	var missing []string
	for _, name := range requested {
		if !services.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
