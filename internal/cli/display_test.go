package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatNotice_Plain(t *testing.T) {
	got := FormatNotice(NoticeWarning, `service "x" not found`, DisplayConfig{})
	want := `! service "x" not found`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = FormatNotice(NoticeInfo, "hello", DisplayConfig{})
	if got != "● hello" {
		t.Errorf("expected %q, got %q", "● hello", got)
	}
}

func TestFormatNotice_ColorKeepsMessage(t *testing.T) {
	got := FormatNotice(NoticeWarning, "careful", DisplayConfig{UseColor: true})
	if !strings.HasSuffix(got, " careful") {
		t.Errorf("expected message suffix, got %q", got)
	}
	if !strings.Contains(got, "!") {
		t.Errorf("expected warning symbol, got %q", got)
	}
}

func TestNewDisplayConfig_NonTerminal(t *testing.T) {
	if NewDisplayConfig(new(bytes.Buffer)).UseColor {
		t.Error("expected color disabled for a buffer")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := newLogger(buf, "info", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info message, got %q", buf.String())
	}

	buf.Reset()
	logger, err = newLogger(buf, "error", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("verbose wins")
	if !strings.Contains(buf.String(), "verbose wins") {
		t.Errorf("expected verbose to force debug, got %q", buf.String())
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := newLogger(new(bytes.Buffer), "loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
}
