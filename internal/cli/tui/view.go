package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Done || m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	for i := range m.Services {
		b.WriteString(m.renderService(i))
		b.WriteString("\n")
	}

	if m.Warning != "" {
		b.WriteString("\n")
		b.WriteString(m.Styles.Warning.Render(IconSelectNone + " " + m.Warning))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderHeader() string {
	count := fmt.Sprintf("%d/%d selected", len(m.Chosen()), len(m.Services))
	return fmt.Sprintf("%s  %s",
		m.Styles.Title.Render("Services"),
		m.Styles.Subtitle.Render(count),
	)
}

// renderService renders one row: › ✓ web  nginx:latest
func (m *Model) renderService(i int) string {
	svc := m.Services[i]

	cursor := " "
	if i == m.Cursor {
		cursor = m.Styles.Cursor.Render(IconCursor)
	}

	mark := m.Styles.Item.Render(IconUnchecked)
	name := m.Styles.Item.Render(svc.Name)
	if m.Selected[i] {
		mark = m.Styles.Selected.Render(IconChecked)
		name = m.Styles.Selected.Render(svc.Name)
	}

	row := fmt.Sprintf("%s %s %s", cursor, mark, name)
	if svc.Image != "" {
		row += "  " + m.Styles.Image.Render(svc.Image)
	}
	return row
}

func (m *Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"↑/↓", "move"},
		{"space", "toggle"},
		{"a", "all"},
		{"enter", "confirm"},
		{"q", "cancel"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.Styles.FooterKey.Render(k.key)+" "+k.desc)
	}
	return m.Styles.Footer.Render(strings.Join(parts, "  "))
}
