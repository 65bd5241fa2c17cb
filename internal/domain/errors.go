package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText          = errors.New("please enter a task")
	ErrUnknownAssignee    = errors.New("unknown assignee")
	ErrUnknownAction      = errors.New("unknown action")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrQuotaExceeded      = errors.New("storage quota exceeded")
	ErrUnknownBackend     = errors.New("unknown storage backend")
	ErrInvalidFormat      = errors.New("invalid export format")
	ErrMigrationConflict  = errors.New("destination already holds a different list")
)
