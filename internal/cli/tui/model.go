// Package tui implements the interactive service picker.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Service is one row in the picker.
type Service struct {
	Name  string
	Image string
}

// Model is the bubbletea model for the service picker
type Model struct {
	// Configuration
	Services []Service
	Styles   Styles

	// State
	Selected []bool
	Cursor   int
	Warning  string
	Width    int
	Height   int

	// Control
	Quitting bool
	Done     bool
}

// NewModel creates a picker with every service selected.
func NewModel(services []Service) *Model {
	selected := make([]bool, len(services))
	for i := range selected {
		selected[i] = true
	}
	return &Model{
		Services: services,
		Styles:   DefaultStyles(),
		Selected: selected,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Chosen returns the selected service names in listing order.
func (m *Model) Chosen() []string {
	var names []string
	for i, svc := range m.Services {
		if m.Selected[i] {
			names = append(names, svc.Name)
		}
	}
	return names
}

// allSelected reports whether every service is selected.
func (m *Model) allSelected() bool {
	for _, s := range m.Selected {
		if !s {
			return false
		}
	}
	return true
}
