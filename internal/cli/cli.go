package cli

import (
	"io"
	"os"

	"github.com/RevCBH/decomposerize/internal/container"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// VersionInfo holds build metadata set via ldflags
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Runtime state
	verbose bool

	// Version information
	versionInfo VersionInfo

	// I/O and environment, replaceable in tests
	stdin           io.Reader
	stdinIsTerminal func() bool
	workDir         func() (string, error)
	detector        container.Detector
	picker          Picker
}

// New creates a new CLI application
func New() *App {
	app := &App{
		stdin: os.Stdin,
		stdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		workDir: os.Getwd,
		picker:  terminalPicker{},
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = NewRootCmd(a)

	// Add persistent flags
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Log diagnostics to stderr")

	a.rootCmd.AddCommand(
		NewVersionCmd(a),
		NewServeCmd(a),
	)
}
