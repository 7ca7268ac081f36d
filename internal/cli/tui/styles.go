package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the picker
type Styles struct {
	// Header styling
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Service rows
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Image    lipgloss.Style

	// Footer styling
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	Warning   lipgloss.Style
}

// DefaultStyles returns the default picker styles
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Image:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),

		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
		FooterKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Icons used in the picker
const (
	IconCursor     = "›"
	IconChecked    = "✓"
	IconUnchecked  = "·"
	IconSelectNone = "!"
)
