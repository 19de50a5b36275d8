package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)

	retrieved := FromContext(ctx)
	if retrieved == nil {
		t.Fatal("FromContext returned nil")
	}
	retrieved.Info("test message")
	if buf.Len() == 0 {
		t.Error("Logger from context should produce output")
	}
}

func TestFromContext_Default(t *testing.T) {
	if l := FromContext(context.Background()); l == nil {
		t.Error("FromContext should return default logger, got nil")
	}
}

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "01JABCDEF")

	if got := RunIDFromContext(ctx); got != "01JABCDEF" {
		t.Errorf("RunIDFromContext() = %q, want %q", got, "01JABCDEF")
	}
	if got := RunIDFromContext(context.Background()); got != "" {
		t.Errorf("RunIDFromContext() = %q, want empty string", got)
	}
}

func TestL_AddsRunID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)
	ctx = WithRunID(ctx, "run-42")
	L(ctx).Info("tagged")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if id, _ := logEntry["run_id"].(string); id != "run-42" {
		t.Errorf("run_id = %v, want run-42", logEntry["run_id"])
	}
}
