package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")
	logger := New(path, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("task", "created #0")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "created #0")
}

func TestLogger_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.log")
	logger := New(path, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("storage", "debug message")
	logger.Info("storage", "info message")
	logger.Warn("storage", "warn message")
	logger.Error("storage", "error message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	// Should not panic or create files
	logger.Error("storage", "nowhere")
	assert.NoError(t, logger.Close())
}

func TestLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.log")

	first := New(path, slog.LevelInfo)
	first.Info("task", "one")
	require.NoError(t, first.Close())

	second := New(path, slog.LevelInfo)
	second.Info("task", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC)

	got := formatLog(ts, slog.LevelError, "storage", "write key \"todo-tasks\": quota")

	assert.Equal(t, "[2025-12-30 09:32:51] [ERROR] [storage] write key \"todo-tasks\": quota\n", got)
}
