package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RevCBH/decomposerize/internal/cli/tui"
	"github.com/RevCBH/decomposerize/internal/config"
	"github.com/RevCBH/decomposerize/internal/container"
	"github.com/RevCBH/decomposerize/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webCompose = `
services:
  web:
    image: nginx
    ports:
      - "80:80"
  db:
    image: postgres
networks:
  net1:
    driver: bridge
`

type stubPicker struct {
	offered []tui.Service
	chosen  []string
	err     error
}

func (p *stubPicker) Pick(services []tui.Service, _ io.Writer) ([]string, error) {
	p.offered = services
	return p.chosen, p.err
}

// newTestApp returns an App reading stdin from input in an empty directory
// with no user config.
func newTestApp(t *testing.T, input string) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	testutil.IsolateConfig(t)

	app := New()
	app.stdin = strings.NewReader(input)
	app.stdinIsTerminal = func() bool { return false }
	app.workDir = func() (string, error) { return dir, nil }
	return app, dir
}

func execute(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	app.rootCmd.SetOut(stdout)
	app.rootCmd.SetErr(stderr)
	app.rootCmd.SetArgs(args)
	err := app.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_StdinDockerRun(t *testing.T) {
	app, _ := newTestApp(t, webCompose)

	out, _, err := execute(t, app, "--docker-run")
	require.NoError(t, err)
	assert.Equal(t, "docker run -p 80:80 nginx\ndocker run postgres\n", out)
}

func TestRoot_FileArgument(t *testing.T) {
	app, dir := newTestApp(t, "")
	path := testutil.WriteFile(t, dir, "compose.yaml", webCompose)

	out, _, err := execute(t, app, path, "--create-networks", "--docker-run", "--long-args", "--services", "web")
	require.NoError(t, err)
	assert.Equal(t, "docker network create --driver bridge net1\ndocker run --publish 80:80 nginx\n", out)
}

func TestRoot_MissingFile(t *testing.T) {
	app, dir := newTestApp(t, "")

	out, _, err := execute(t, app, filepath.Join(dir, "nope.yaml"), "--docker-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read compose file")
	assert.Empty(t, out)
}

func TestRoot_TerminalStdin(t *testing.T) {
	app, _ := newTestApp(t, "")
	app.stdinIsTerminal = func() bool { return true }

	_, _, err := execute(t, app, "--docker-run")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestRoot_TerminalStdinFindsComposeFile(t *testing.T) {
	app, dir := newTestApp(t, "")
	app.stdinIsTerminal = func() bool { return true }
	testutil.WriteFile(t, dir, "docker-compose.yml", webCompose)

	out, _, err := execute(t, app, "--docker-run", "--services", "db")
	require.NoError(t, err)
	assert.Equal(t, "docker run postgres\n", out)
}

func TestRoot_DashReadsStdin(t *testing.T) {
	app, _ := newTestApp(t, webCompose)

	out, _, err := execute(t, app, "-", "--docker-run", "--services", "db")
	require.NoError(t, err)
	assert.Equal(t, "docker run postgres\n", out)
}

func TestRoot_InvalidYAML(t *testing.T) {
	app, _ := newTestApp(t, "services: [unclosed")

	out, _, err := execute(t, app, "--docker-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse compose file")
	assert.Empty(t, out)
}

func TestRoot_InvalidServices(t *testing.T) {
	app, _ := newTestApp(t, "services: oops\n")

	out, stderr, err := execute(t, app, "--docker-run")
	require.NoError(t, err)
	assert.Equal(t, "# invalid Docker Compose\n", out)
	assert.Contains(t, stderr, "services must be a mapping")
}

func TestRoot_UnknownServiceWarns(t *testing.T) {
	app, _ := newTestApp(t, webCompose)

	out, stderr, err := execute(t, app, "--docker-run", "--services", "web,cache")
	require.NoError(t, err)
	assert.Equal(t, "docker run -p 80:80 nginx\n", out)
	assert.Contains(t, stderr, `service "cache" not found`)
}

func TestRoot_InvalidSeparatorFlag(t *testing.T) {
	app, _ := newTestApp(t, webCompose)

	_, _, err := execute(t, app, "--docker-run", "--arg-value-separator", ":")
	require.Error(t, err)

	var vErr *config.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestRoot_ConfigFileAndFlagPrecedence(t *testing.T) {
	app, dir := newTestApp(t, webCompose)
	cfg := "output:\n  docker_run: true\nlong_args: true\narg_value_separator: \"=\"\n"
	testutil.WriteFile(t, dir, config.FileName, cfg)

	out, _, err := execute(t, app, "--services", "web")
	require.NoError(t, err)
	assert.Equal(t, "docker run --publish=80:80 nginx\n", out)

	app, dir = newTestApp(t, webCompose)
	testutil.WriteFile(t, dir, config.FileName, cfg)

	out, _, err = execute(t, app, "--services", "web", "--long-args=false", "--arg-value-separator", " ")
	require.NoError(t, err)
	assert.Equal(t, "docker run -p 80:80 nginx\n", out)
}

func TestRoot_EnvOverridesConfigFile(t *testing.T) {
	app, dir := newTestApp(t, webCompose)
	testutil.WriteFile(t, dir, config.FileName, "multiline: false\n")
	t.Setenv("DECOMPOSERIZE_MULTILINE", "true")

	out, _, err := execute(t, app, "--docker-run", "--services", "web")
	require.NoError(t, err)
	assert.Equal(t, "docker run -p 80:80 \\\n\tnginx\n", out)
}

func TestRoot_Interpolation(t *testing.T) {
	src := "services:\n  web:\n    image: nginx:${TAG:-latest}\n    environment:\n      - MODE=${MODE}\n"
	app, dir := newTestApp(t, src)
	envFile := testutil.WriteFile(t, dir, "prod.env", "MODE=prod\nTAG=1.25\n")
	t.Setenv("TAG", "1.27")

	out, _, err := execute(t, app, "--docker-run", "--env-file", envFile)
	require.NoError(t, err)
	assert.Equal(t, "docker run -e MODE=prod nginx:1.27\n", out)
}

func TestRoot_NoInterpolationByDefault(t *testing.T) {
	app, _ := newTestApp(t, "services:\n  web:\n    image: nginx:${TAG}\n")

	out, _, err := execute(t, app, "--docker-run")
	require.NoError(t, err)
	assert.Equal(t, "docker run nginx:${TAG}\n", out)
}

func TestRoot_InterpolationError(t *testing.T) {
	app, _ := newTestApp(t, "services:\n  web:\n    image: ${DECOMPOSERIZE_TEST_UNSET:?needs an image}\n")

	out, _, err := execute(t, app, "--docker-run", "--interpolate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "services.web.image")
	assert.Empty(t, out)
}

func TestRoot_Engine(t *testing.T) {
	app, _ := newTestApp(t, webCompose)

	out, _, err := execute(t, app, "--engine", "podman", "--docker-run", "--stop-and-remove", "--services", "db")
	require.NoError(t, err)
	assert.Equal(t, "podman stop db\npodman rm db\npodman run postgres\n", out)
}

func TestRoot_DetectEngine(t *testing.T) {
	app, _ := newTestApp(t, webCompose)
	app.detector = container.Detector{
		LookPath: func(bin string) (string, error) {
			if bin == "podman" {
				return "/usr/bin/podman", nil
			}
			return "", errors.New("not found")
		},
		Probe: func(context.Context, string) error { return nil },
	}

	out, stderr, err := execute(t, app, "--detect-engine", "--create-networks", "-v")
	require.NoError(t, err)
	assert.Equal(t, "podman network create --driver bridge net1\n", out)
	assert.Contains(t, stderr, "detected container engine")
}

func TestRoot_DetectEngineFails(t *testing.T) {
	app, _ := newTestApp(t, webCompose)
	app.detector = container.Detector{
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
	}

	_, _, err := execute(t, app, "--detect-engine", "--docker-run")
	assert.ErrorIs(t, err, container.ErrNoRuntime)
}

func TestRoot_Pick(t *testing.T) {
	app, _ := newTestApp(t, webCompose)
	picker := &stubPicker{chosen: []string{"db"}}
	app.picker = picker

	out, _, err := execute(t, app, "--docker-run", "--pick")
	require.NoError(t, err)
	assert.Equal(t, "docker run postgres\n", out)
	assert.Equal(t, []tui.Service{{Name: "web", Image: "nginx"}, {Name: "db", Image: "postgres"}}, picker.offered)
}

func TestRoot_PickNarrowedByServices(t *testing.T) {
	app, _ := newTestApp(t, webCompose)
	picker := &stubPicker{chosen: []string{"web"}}
	app.picker = picker

	_, _, err := execute(t, app, "--docker-run", "--pick", "--services", "web")
	require.NoError(t, err)
	assert.Equal(t, []tui.Service{{Name: "web", Image: "nginx"}}, picker.offered)
}

func TestRoot_PickCancelled(t *testing.T) {
	app, _ := newTestApp(t, webCompose)
	app.picker = &stubPicker{err: tui.ErrCancelled}

	out, _, err := execute(t, app, "--docker-run", "--pick")
	assert.ErrorIs(t, err, tui.ErrCancelled)
	assert.Empty(t, out)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	app, _ := newTestApp(t, "services:\n  web:\n    image: nginx\n    x-custom: 1\n")

	out, stderr, err := execute(t, app, "--docker-run", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "docker run nginx\n", out)
	assert.Contains(t, stderr, "no run flag for service key")
}

func TestRoot_EmptyOutput(t *testing.T) {
	app, _ := newTestApp(t, webCompose)

	out, _, err := execute(t, app)
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestApplyFlagOverrides_OnlyChanged(t *testing.T) {
	app := New()
	flags := app.rootCmd.Flags()
	require.NoError(t, flags.Parse([]string{"--multiline", "--docker-build"}))

	cfg := config.DefaultConfig()
	cfg.LongArgs = true
	opts := &RunOptions{Multiline: true, DockerBuild: true, LongArgs: false}
	applyFlagOverrides(cfg, flags, opts)

	assert.True(t, cfg.Multiline)
	assert.True(t, cfg.Output.DockerBuild)
	assert.True(t, cfg.LongArgs, "unset flag must not override config")
}
