package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Assignee string // Only tasks assigned to this person (empty = all)
}

// ListTasksOutput contains the partitioned task list.
type ListTasksOutput struct {
	Pending   []domain.Task // Incomplete tasks in list order
	Completed []domain.Task // Complete tasks in list order
}

// Total returns the number of listed tasks.
func (o *ListTasksOutput) Total() int {
	return len(o.Pending) + len(o.Completed)
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskList
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskList) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns the pending and completed tasks.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks := uc.tasks.Value()

	if in.Assignee != "" {
		assignee := domain.NormalizeAssignee(in.Assignee)
		filtered := make([]domain.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.AssignedTo == assignee {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	pending, completed := domain.Partition(tasks)
	return &ListTasksOutput{Pending: pending, Completed: completed}, nil
}
