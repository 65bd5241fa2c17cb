package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTask_Execute_TwiceRestores(t *testing.T) {
	list := &testutil.MockTaskList{Tasks: []domain.Task{
		{ID: 0, Text: "a", AssignedTo: domain.Unassigned},
		{ID: 1, Text: "b", AssignedTo: "Bob"},
	}}
	uc := NewToggleTask(list, nil)

	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: 1})
	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.True(t, out.Task.IsComplete)
	assert.Equal(t, "Bob", out.Task.AssignedTo)
	assert.Equal(t, 1, list.Tasks[1].ID, "position preserved")

	out, err = uc.Execute(context.Background(), ToggleTaskInput{TaskID: 1})
	require.NoError(t, err)
	assert.False(t, out.Task.IsComplete)
	assert.Equal(t, 2, list.Sets)
}

func TestToggleTask_Execute_NotFound(t *testing.T) {
	list := &testutil.MockTaskList{Tasks: []domain.Task{{ID: 0, Text: "a"}}}
	uc := NewToggleTask(list, nil)

	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: 7})

	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Zero(t, list.Sets)
}
