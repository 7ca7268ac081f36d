package tui

import tea "github.com/charmbracelet/bubbletea"

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		m.Warning = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}

		case "down", "j":
			if m.Cursor < len(m.Services)-1 {
				m.Cursor++
			}

		case " ", "space", "x":
			if len(m.Services) > 0 {
				m.Selected[m.Cursor] = !m.Selected[m.Cursor]
			}

		case "a":
			all := !m.allSelected()
			for i := range m.Selected {
				m.Selected[i] = all
			}

		case "enter":
			if len(m.Chosen()) == 0 {
				m.Warning = "select at least one service"
				return m, nil
			}
			m.Done = true
			return m, tea.Quit
		}
	}

	return m, nil
}
