package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/RevCBH/decomposerize/internal/cli/tui"
	"github.com/RevCBH/decomposerize/internal/compose"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when --pick is used without a terminal.
var ErrNotTerminal = errors.New("--pick needs an interactive terminal")

// Picker chooses a subset of services.
type Picker interface {
	Pick(services []tui.Service, out io.Writer) ([]string, error)
}

// terminalPicker runs the bubbletea picker on the controlling terminal, so it
// works while the compose file arrives on stdin.
type terminalPicker struct{}

func (terminalPicker) Pick(services []tui.Service, out io.Writer) ([]string, error) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, ErrNotTerminal
	}
	return tui.Pick(services, tea.WithInputTTY(), tea.WithOutput(out))
}

// pick offers the document's services, narrowed to allow when it is set.
func (a *App) pick(doc *compose.Document, allow []string, out io.Writer) ([]string, error) {
	services := pickable(doc, allow)
	if len(services) == 0 {
		return allow, nil
	}
	chosen, err := a.picker.Pick(services, out)
	if err != nil {
		return nil, fmt.Errorf("pick services: %w", err)
	}
	return chosen, nil
}

func pickable(doc *compose.Document, allow []string) []tui.Service {
	services := doc.Section("services")
	if !services.IsMapping() {
		return nil
	}
	var out []tui.Service
	for _, f := range services.Fields {
		if len(allow) > 0 && !slices.Contains(allow, f.Key) {
			continue
		}
		svc := tui.Service{Name: f.Key}
		if image := f.Value.Get("image"); image.IsScalar() {
			svc.Image = image.String()
		}
		out = append(out, svc)
	}
	return out
}
