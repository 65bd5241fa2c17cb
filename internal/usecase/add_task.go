// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text       string // Task text (required, trimmed)
	AssignedTo string // Assignee (optional, empty = Unassigned)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for adding a task to the list.
type AddTask struct {
	tasks  domain.TaskList
	config *domain.Config
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskList, config *domain.Config, logger domain.Logger) *AddTask {
	if config == nil {
		config = domain.NewDefaultConfig()
	}
	return &AddTask{
		tasks:  tasks,
		config: config,
		logger: orNop(logger),
	}
}

// Execute validates the input and appends a new task.
// On validation failure the list is left untouched.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	assignee, err := uc.config.ResolveAssignee(in.AssignedTo)
	if err != nil {
		return nil, err
	}

	next, task, err := domain.AddTask(uc.tasks.Value(), in.Text, assignee)
	if err != nil {
		return nil, err
	}
	uc.tasks.Set(next)

	uc.logger.Info("task", fmt.Sprintf("created #%d: %q [%s]", task.ID, task.Text, task.AssignedTo))
	return &AddTaskOutput{Task: task}, nil
}

func orNop(logger domain.Logger) domain.Logger {
	if logger == nil {
		return domain.NopLogger{}
	}
	return logger
}
