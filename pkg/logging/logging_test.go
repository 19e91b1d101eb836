package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		" INFO ":  log.InfoLevel,
		"error":   log.ErrorLevel,
		"":        log.WarnLevel,
		"verbose": log.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Prefix: "jot", Level: "info", Formatter: "logfmt", Out: &buf})

	logger.Debug("hidden")
	logger.Info("loaded journal", "version", "0.1.0")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "loaded journal") || !strings.Contains(out, "version=0.1.0") {
		t.Fatalf("expected info line with fields, got %q", out)
	}
}

func TestNewJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Formatter: "json", Out: &buf})
	logger.Info("saved journal", "bytes", 42)

	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"msg":"saved journal"`) {
		t.Fatalf("expected a json line, got %q", out)
	}
}
