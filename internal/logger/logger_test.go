package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf})
	l.With("component", "renderer").WithGroup("gl").Info("program linked", "id", 3)

	line := buf.String()
	for _, want := range []string{"INFO ", "program linked", "component=renderer", "gl.id=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("output %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("output %q not newline terminated", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})
	l.Info("hidden")
	l.Debug("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level records written: %q", out)
	}
	if !strings.Contains(out, "WARN  shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Output: &buf})
	l.Info("frame", "n", 1)
	if !strings.Contains(buf.String(), `"msg":"frame"`) {
		t.Errorf("json output %q", buf.String())
	}
}

func TestInitSetsDefault(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	L().Info("via L")
	slog.Info("via default")
	out := buf.String()
	if !strings.Contains(out, "via L") || !strings.Contains(out, "via default") {
		t.Errorf("output %q missing records", out)
	}
}
