package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/filestore"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("TODO_STORE", "")
	return dir
}

func TestNew_DefaultFileBackend(t *testing.T) {
	dir := isolateEnv(t)

	c, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	store, ok := c.Storage.(*filestore.Store)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "data", "todo", "storage.json"), store.Path())
	assert.Empty(t, c.Tasks.Value())
}

func TestNew_PersistsAcrossContainers(t *testing.T) {
	dir := isolateEnv(t)

	c1, err := New(dir)
	require.NoError(t, err)
	_, err = c1.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: "Buy milk"})
	require.NoError(t, err)
	require.NoError(t, c1.Close())

	c2, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = c2.Close() }()
	assert.Equal(t, c1.Tasks.Value(), c2.Tasks.Value())
}

func TestNew_EnvSelectsMemory(t *testing.T) {
	dir := isolateEnv(t)
	t.Setenv("TODO_STORE", domain.BackendMemory)

	c, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	_, ok := c.Storage.(*memstore.Store)
	assert.True(t, ok)
}

func TestNew_EnvSelectsNone(t *testing.T) {
	dir := isolateEnv(t)
	t.Setenv("TODO_STORE", domain.BackendNone)

	c, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Nil(t, c.Storage)
	_, err = c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: "a"})
	require.NoError(t, err, "no storage still works in memory")
	assert.Len(t, c.Tasks.Value(), 1)
}

func TestNew_UnknownBackend(t *testing.T) {
	dir := isolateEnv(t)
	t.Setenv("TODO_STORE", "floppy")

	_, err := New(dir)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestOpenStorage_GitOutsideRepo(t *testing.T) {
	dir := t.TempDir()

	_, _, err := openStorage(Config{WorkDir: dir}, domain.StorageConfig{Backend: domain.BackendGit, Namespace: "todo"})
	assert.Error(t, err)
}

func TestNewWithDeps_HydratesFromStorage(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Values[domain.DefaultStorageKey] = `[{"id":3,"text":"x","assignedTo":"Unassigned","isComplete":true}]`

	c := NewWithDeps(Config{}, nil, storage, nil)

	require.Len(t, c.Tasks.Value(), 1)
	assert.Equal(t, 3, c.Tasks.Value()[0].ID)
	assert.NoError(t, c.Close())
}

func TestOpenBackend_MemoryAndNone(t *testing.T) {
	c := NewWithDeps(Config{}, nil, testutil.NewMockStorage(), nil)

	store, closer, err := c.OpenBackend(domain.BackendMemory)
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.IsType(t, &memstore.Store{}, store)

	store, _, err = c.OpenBackend(domain.BackendNone)
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestOpenBackend_FileUsesDataDir(t *testing.T) {
	dir := t.TempDir()
	c := NewWithDeps(Config{DataDir: dir}, nil, nil, nil)

	store, _, err := c.OpenBackend(domain.BackendFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "storage.json"), store.(*filestore.Store).Path())
}
