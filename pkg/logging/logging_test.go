package logging

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
		{" DEBUG ", slog.LevelDebug},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitSetsDefaultLogger(t *testing.T) {
	logger := Init("debug", "text", "")

	if logger == nil {
		t.Fatal("Init returned nil")
	}
	if slog.Default() != logger {
		t.Error("Expected Init to set the default logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be enabled")
	}
}

func TestInitWithLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "askgpt.log")

	logger := Init("info", "json", logFile)

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be disabled at info")
	}
	// Writing through the rotating writer must not fail even before the
	// file exists.
	logger.Info("test entry")
}
