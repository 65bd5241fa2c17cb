package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveTasks() []domain.Task {
	return []domain.Task{
		{ID: 0, Text: "a", AssignedTo: "Alice", IsComplete: true},
		{ID: 1, Text: "b", AssignedTo: domain.Unassigned},
		{ID: 2, Text: "c", AssignedTo: "Alice", IsComplete: true},
		{ID: 3, Text: "d", AssignedTo: "Alice"},
		{ID: 4, Text: "e", AssignedTo: domain.Unassigned, IsComplete: true},
	}
}

func TestListTasks_Execute_Partitions(t *testing.T) {
	uc := NewListTasks(&testutil.MockTaskList{Tasks: fiveTasks()})

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Completed, 3)
	require.Len(t, out.Pending, 2)
	assert.Equal(t, 5, out.Total())
	assert.Equal(t, "a", out.Completed[0].Text)
	assert.Equal(t, "c", out.Completed[1].Text)
	assert.Equal(t, "e", out.Completed[2].Text)
	assert.Equal(t, "b", out.Pending[0].Text)
	assert.Equal(t, "d", out.Pending[1].Text)
}

func TestListTasks_Execute_FilterAssignee(t *testing.T) {
	uc := NewListTasks(&testutil.MockTaskList{Tasks: fiveTasks()})

	out, err := uc.Execute(context.Background(), ListTasksInput{Assignee: "Alice"})

	require.NoError(t, err)
	assert.Len(t, out.Completed, 2)
	assert.Len(t, out.Pending, 1)
}

func TestListTasks_Execute_Empty(t *testing.T) {
	uc := NewListTasks(&testutil.MockTaskList{})

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	assert.Zero(t, out.Total())
}
