package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RevCBH/decomposerize/internal/config"
	"github.com/RevCBH/decomposerize/internal/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions holds flags for the serve command
type ServeOptions struct {
	Addr string
}

// NewServeCmd creates the serve command
func NewServeCmd(app *App) *cobra.Command {
	opts := ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API and playground over HTTP",
		Long: `Serve starts an HTTP server exposing POST /api/v1/convert, GET /health
and a browser playground at /. Request options override the settings from
.decomposerize.yaml and the environment.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "HTTP listen address")

	return cmd
}

// Serve runs the HTTP server until ctx is cancelled.
func (a *App) Serve(ctx context.Context, cmd *cobra.Command, opts ServeOptions) error {
	wd, err := a.workDir()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.LoadConfig(wd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	logger, err := newLogger(stderr, cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Engine == config.EngineAuto {
		engine, err := a.detector.Detect(ctx)
		if err != nil {
			return fmt.Errorf("detect engine: %w", err)
		}
		cfg.Engine = engine
	}
	if cfg.Engine != config.DefaultEngine && cfg.DockerRunCommand == config.DefaultDockerRunCommand {
		cfg.DockerRunCommand = cfg.Engine + " run"
	}

	defaults := cfg.RenderOptions()
	defaults.Logger = logger

	srv, err := web.New(web.Config{Addr: opts.Addr, Defaults: defaults})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	if err := srv.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	logger.Info("listening", zap.String("addr", srv.Addr()))
	fmt.Fprintln(stderr, FormatNotice(NoticeInfo, "listening on http://"+srv.Addr(), NewDisplayConfig(stderr)))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Debug("server stopped")
	return nil
}
