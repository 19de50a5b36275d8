package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default config", DefaultConfig(), false},
		{"json format", Config{Level: "debug", Format: "json"}, false},
		{"empty config", Config{}, false},
		{"upper case", Config{Level: "WARN", Format: "JSON"}, false},
		{"unknown format", Config{Format: "xml"}, true},
		{"unknown level", Config{Level: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && l == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"invalid", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		level   string
		logFunc func(string, ...any)
	}{
		{"DEBUG", l.Debug},
		{"INFO", l.Info},
		{"WARN", l.Warn},
		{"ERROR", l.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.logFunc("test message", "capacity", 1024)

			var logEntry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("Failed to parse JSON log: %v", err)
			}
			if lvl, _ := logEntry["level"].(string); lvl != tt.level {
				t.Errorf("level = %v, want %s", logEntry["level"], tt.level)
			}
			if c, _ := logEntry["capacity"].(float64); c != 1024 {
				t.Errorf("capacity = %v, want 1024", logEntry["capacity"])
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Debug("debug message")
	l.Info("info message")
	if buf.Len() > 0 {
		t.Error("Debug/Info messages should be filtered when level is warn")
	}

	l.Warn("warn message")
	if buf.Len() == 0 {
		t.Error("Warn message should be logged")
	}
}

func TestLogger_IndependentLevels(t *testing.T) {
	var quiet, loud bytes.Buffer
	q, _ := New(Config{Level: "error", Output: &quiet})
	d, _ := New(Config{Level: "debug", Output: &loud})

	q.Info("hidden")
	d.Info("shown")

	if quiet.Len() > 0 {
		t.Error("error-level logger should drop info records")
	}
	if loud.Len() == 0 {
		t.Error("creating a second logger should not change the first one's level")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.With("component", "driver").Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if c, ok := logEntry["component"].(string); !ok || c != "driver" {
		t.Errorf("Expected component='driver', got %v", logEntry["component"])
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("test message", "component", "driver")

	output := buf.String()
	if !strings.Contains(output, "msg=\"test message\"") {
		t.Errorf("Text output should contain message, got: %s", output)
	}
	if !strings.Contains(output, "component=driver") {
		t.Errorf("Text output should contain component=driver, got: %s", output)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("DefaultConfig().Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != "text" {
		t.Errorf("DefaultConfig().Format = %q, want %q", cfg.Format, "text")
	}
	if cfg.Output == nil {
		t.Error("DefaultConfig().Output should not be nil")
	}
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	l, _ := New(Config{Output: &buf})
	SetDefault(l)
	Default().Info("via default")
	if buf.Len() == 0 {
		t.Error("Default() should return the logger passed to SetDefault")
	}

	SetDefault(nil)
	if Default() == nil {
		t.Error("SetDefault(nil) should keep the previous logger")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	// Should not panic
	l.With("k", "v").Error("dropped")
}
