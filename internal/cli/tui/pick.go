package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user quits the picker without confirming.
var ErrCancelled = errors.New("service selection cancelled")

// Pick runs the picker and returns the chosen service names. Options select
// the terminal streams.
func Pick(services []Service, opts ...tea.ProgramOption) ([]string, error) {
	model := NewModel(services)
	p := tea.NewProgram(model, opts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(*Model)
	if !ok || !m.Done {
		return nil, ErrCancelled
	}
	return m.Chosen(), nil
}
