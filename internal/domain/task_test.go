package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_UnmarshalJSON_FullRecord(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":3,"text":"Buy milk","assignedTo":"Alice","isComplete":true}`), &task)

	require.NoError(t, err)
	assert.Equal(t, Task{ID: 3, Text: "Buy milk", AssignedTo: "Alice", IsComplete: true}, task)
}

func TestTask_UnmarshalJSON_LegacyRecord(t *testing.T) {
	var tasks []Task
	err := json.Unmarshal([]byte(`[{"id":0,"text":"Walk dog"}]`), &tasks)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, Unassigned, tasks[0].AssignedTo)
	assert.False(t, tasks[0].IsComplete)
}

func TestTask_UnmarshalJSON_BlankAssignee(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":1,"text":"x","assignedTo":"  "}`), &task)

	require.NoError(t, err)
	assert.Equal(t, Unassigned, task.AssignedTo)
}

func TestTask_UnmarshalJSON_WrongType(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":"one","text":"x"}`), &task)

	assert.Error(t, err)
}

func TestTask_MarshalJSON_FieldNames(t *testing.T) {
	data, err := json.Marshal(Task{ID: 1, Text: "Walk dog", AssignedTo: Unassigned})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"text":"Walk dog","assignedTo":"Unassigned","isComplete":false}`, string(data))
}

func TestTask_StatusLabel(t *testing.T) {
	assert.Equal(t, "pending", Task{}.StatusLabel())
	assert.Equal(t, "complete", Task{IsComplete: true}.StatusLabel())
}

func TestNormalizeAssignee(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", Unassigned},
		{"   ", Unassigned},
		{"Bob", "Bob"},
		{"  Bob  ", "Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAssignee(tt.input))
		})
	}
}
