package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Format string // json (default) or yaml
}

// ExportTasksOutput contains the encoded list.
type ExportTasksOutput struct {
	Data string
}

// ExportTasks is the use case for dumping the task list.
type ExportTasks struct {
	tasks domain.TaskList
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskList) *ExportTasks {
	return &ExportTasks{tasks: tasks}
}

// Execute encodes the whole list in storage order.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks := uc.tasks.Value()
	if tasks == nil {
		tasks = []domain.Task{}
	}

	switch in.Format {
	case "", FormatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return &ExportTasksOutput{Data: string(data) + "\n"}, nil
	case FormatYAML:
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return &ExportTasksOutput{Data: string(data)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, in.Format)
	}
}
