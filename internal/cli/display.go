package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DisplayConfig controls diagnostic output formatting
type DisplayConfig struct {
	UseColor bool // Enable ANSI color codes
}

// NewDisplayConfig enables color when w is a terminal.
func NewDisplayConfig(w io.Writer) DisplayConfig {
	f, ok := w.(*os.File)
	return DisplayConfig{UseColor: ok && term.IsTerminal(int(f.Fd()))}
}

// NoticeLevel classifies a diagnostic line
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
)

// NoticeSymbol returns the prefix symbol for a notice level
func NoticeSymbol(level NoticeLevel) string {
	switch level {
	case NoticeWarning:
		return "!"
	default:
		return "●"
	}
}

var noticeStyles = map[NoticeLevel]lipgloss.Style{
	NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	NoticeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
}

// FormatNotice formats a diagnostic line for stderr: "! service "x" not found"
func FormatNotice(level NoticeLevel, msg string, cfg DisplayConfig) string {
	prefix := NoticeSymbol(level)
	if cfg.UseColor {
		prefix = noticeStyles[level].Render(prefix)
	}
	return prefix + " " + msg
}
