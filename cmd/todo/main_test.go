package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args opens the TUI, which needs storage",
			args: nil,
			want: false,
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: true,
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: true,
		},
		{
			name: "help subcommand",
			args: []string{"help", "add"},
			want: true,
		},
		{
			name: "subcommand help",
			args: []string{"add", "-h"},
			want: true,
		},
		{
			name: "non-allowed command",
			args: []string{"add", "Buy milk"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("TODO_STORE", domain.BackendMemory)
}

func TestRun_Add(t *testing.T) {
	isolate(t)

	require.NoError(t, run([]string{"add", "Buy", "milk"}))
}

func TestRun_EmptyTextFails(t *testing.T) {
	isolate(t)

	err := run([]string{"add", "  "})

	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestRun_BadBackend(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_STORE", "floppy")

	assert.ErrorIs(t, run([]string{"list"}), domain.ErrUnknownBackend)
	assert.NoError(t, run([]string{"--version"}))
}
