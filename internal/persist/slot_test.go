package persist

import (
	"errors"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key = "todo-tasks"

func TestOpen_NilStorageUsesDefault(t *testing.T) {
	def := []domain.Task{{ID: 0, Text: "default"}}

	slot := Open[[]domain.Task](nil, key, def, nil)

	assert.Equal(t, def, slot.Value())
	assert.Equal(t, key, slot.Key())
}

func TestOpen_UnavailableStorageUsesDefault(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Values[key] = `[{"id":5,"text":"stored"}]`
	storage.Unavailable = true

	slot := Open(storage, key, []domain.Task{}, nil)

	assert.Empty(t, slot.Value())
}

func TestOpen_MissingKeyUsesDefault(t *testing.T) {
	storage := testutil.NewMockStorage()
	logger := &testutil.MockLogger{}

	slot := Open(storage, key, []domain.Task{}, logger)

	assert.Empty(t, slot.Value())
	assert.Zero(t, logger.Count("ERROR"))
}

func TestOpen_HydratesFromStorage(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Values[key] = `[{"id":1,"text":"Walk dog","assignedTo":"Bob","isComplete":true}]`

	slot := Open(storage, key, []domain.Task{}, nil)

	assert.Equal(t, []domain.Task{{ID: 1, Text: "Walk dog", AssignedTo: "Bob", IsComplete: true}}, slot.Value())
}

func TestOpen_CorruptDataLogsAndUsesDefault(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Values[key] = `{not json`
	logger := &testutil.MockLogger{}

	slot := Open(storage, key, []domain.Task{}, logger)

	assert.Empty(t, slot.Value())
	require.Equal(t, 1, logger.Count("ERROR"))
	assert.Contains(t, logger.Entries[0].Msg, "decode")
	assert.Equal(t, `{not json`, storage.Values[key], "open must not rewrite the slot")
}

func TestOpen_ReadErrorLogsAndUsesDefault(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.ReadErr = errors.New("disk on fire")
	logger := &testutil.MockLogger{}

	slot := Open(storage, key, []domain.Task{}, logger)

	assert.Empty(t, slot.Value())
	assert.Equal(t, 1, logger.Count("ERROR"))
}

func TestSet_WritesBack(t *testing.T) {
	storage := testutil.NewMockStorage()
	slot := Open(storage, key, []domain.Task{}, nil)

	slot.Set([]domain.Task{{ID: 0, Text: "Buy milk", AssignedTo: domain.Unassigned}})

	assert.JSONEq(t, `[{"id":0,"text":"Buy milk","assignedTo":"Unassigned","isComplete":false}]`, storage.Values[key])
	assert.Equal(t, 1, storage.Writes)
}

func TestSet_UnavailableStorageSkipsWrite(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Unavailable = true
	slot := Open(storage, key, []domain.Task{}, nil)

	slot.Set([]domain.Task{{ID: 0, Text: "x"}})

	assert.Zero(t, storage.Writes)
	assert.Len(t, slot.Value(), 1)
}

func TestSet_RejectedWriteKeepsMemoryAndPriorStore(t *testing.T) {
	storage := testutil.NewMockStorage()
	storage.Values[key] = `[{"id":0,"text":"old"}]`
	logger := &testutil.MockLogger{}
	slot := Open(storage, key, []domain.Task{}, logger)

	storage.WriteErr = domain.ErrQuotaExceeded
	slot.Set([]domain.Task{{ID: 0, Text: "old"}, {ID: 1, Text: "new"}})

	assert.Len(t, slot.Value(), 2)
	assert.Equal(t, `[{"id":0,"text":"old"}]`, storage.Values[key])
	assert.Equal(t, 1, logger.Count("ERROR"))
	assert.Equal(t, 1, storage.Writes, "no retries")
}

func TestUpdate_AppliesFunction(t *testing.T) {
	storage := testutil.NewMockStorage()
	slot := Open(storage, key, 1, nil)

	slot.Update(func(v int) int { return v + 41 })

	assert.Equal(t, 42, slot.Value())
	assert.Equal(t, "42", storage.Values[key])
}

func TestRoundTrip_ReopenReproducesList(t *testing.T) {
	storage := testutil.NewMockStorage()
	want := []domain.Task{
		{ID: 0, Text: "Buy milk", AssignedTo: domain.Unassigned},
		{ID: 3, Text: "Walk dog", AssignedTo: "Bob", IsComplete: true},
		{ID: 1, Text: "Call mom", AssignedTo: domain.Unassigned},
	}

	Open(storage, key, []domain.Task{}, nil).Set(want)
	reopened := Open(storage, key, []domain.Task{}, nil)

	assert.Equal(t, want, reopened.Value())
}

func TestSlot_ImplementsTaskList(t *testing.T) {
	var _ domain.TaskList = Open(testutil.NewMockStorage(), key, []domain.Task{}, nil)
}
