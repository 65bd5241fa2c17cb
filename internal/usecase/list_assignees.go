package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ListAssigneesOutput contains the roster.
type ListAssigneesOutput struct {
	Assignees []string // Unassigned first
}

// ListAssignees is the use case for listing the assignee roster.
type ListAssignees struct {
	config *domain.Config
}

// NewListAssignees creates a new ListAssignees use case.
func NewListAssignees(config *domain.Config) *ListAssignees {
	if config == nil {
		config = domain.NewDefaultConfig()
	}
	return &ListAssignees{config: config}
}

// Execute returns the roster.
func (uc *ListAssignees) Execute(_ context.Context) (*ListAssigneesOutput, error) {
	return &ListAssigneesOutput{Assignees: uc.config.Roster()}, nil
}
