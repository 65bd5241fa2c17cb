package tui

import "github.com/runoshun/todo/internal/usecase"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the partitioned list has been read.
type MsgTasksLoaded struct {
	List *usecase.ListTasksOutput
}

func (MsgTasksLoaded) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
