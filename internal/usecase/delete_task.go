package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task    domain.Task // The removed task (zero if none)
	Deleted bool        // False when no task had the ID
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskList
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskList, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: orNop(logger),
	}
}

// Execute deletes the task with the given ID.
// An unknown ID is not an error; the list is left unchanged.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	current := uc.tasks.Value()
	idx := domain.FindTask(current, in.TaskID)
	if idx < 0 {
		return &DeleteTaskOutput{}, nil
	}
	removed := current[idx]

	next, err := domain.Apply(current, domain.DeleteAction{ID: in.TaskID})
	if err != nil {
		return nil, err
	}
	uc.tasks.Set(next)

	uc.logger.Info("task", fmt.Sprintf("deleted #%d", in.TaskID))
	return &DeleteTaskOutput{Task: removed, Deleted: true}, nil
}
