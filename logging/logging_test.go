package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
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
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("visible", "count", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains suppressed records: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "count=3") {
		t.Errorf("output missing warn record: %q", out)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")

	log, closeFn, err := NewFile(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Info("session start", "nodes", 12)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session start") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestNewFileBadPath(t *testing.T) {
	_, _, err := NewFile(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"), slog.LevelInfo)
	if err == nil {
		t.Fatal("expected error for unreachable path")
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("dropped")
}
