package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling completion.
type ToggleTaskInput struct {
	TaskID int
}

// ToggleTaskOutput contains the result of toggling completion.
type ToggleTaskOutput struct {
	Task  domain.Task // The task after the toggle (zero if not found)
	Found bool
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks  domain.TaskList
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskList, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		logger: orNop(logger),
	}
}

// Execute toggles the task with the given ID. An unknown ID is a no-op.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	current := uc.tasks.Value()
	idx := domain.FindTask(current, in.TaskID)
	if idx < 0 {
		return &ToggleTaskOutput{}, nil
	}

	next, err := domain.Apply(current, domain.ToggleAction{ID: in.TaskID})
	if err != nil {
		return nil, err
	}
	uc.tasks.Set(next)

	task := next[idx]
	uc.logger.Info("task", fmt.Sprintf("#%d marked %s", task.ID, task.StatusLabel()))
	return &ToggleTaskOutput{Task: task, Found: true}, nil
}
