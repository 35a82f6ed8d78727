package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/pier/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("pier")

	if cfg.Name != "pier" {
		t.Errorf("Name = %v, want pier", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"off", mdwlog.LevelOff},
		{"invalid", mdwlog.LevelWarn},
		{"", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_Output(t *testing.T) {
	var buf, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "test",
		Level:             "info",
		Format:            "json",
		Output:            &buf,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Debug("hidden")
	logger.Info("visible", mdwlog.Fields{"alias": "deploy"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
	if !strings.Contains(out, `"alias":"deploy"`) {
		t.Errorf("output missing field: %s", out)
	}
	if extra.String() != out {
		t.Errorf("additional output = %q, want %q", extra.String(), out)
	}
}

func TestNewLogger_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Format: "xml", Output: &buf})

	logger.Info("hello")

	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected text output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("output missing message: %q", buf.String())
	}
}
