package tui

import "github.com/runoshun/todo/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the repository.
type MsgTasksLoaded struct {
	Tasks []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a task has been appended.
type MsgTaskAdded struct {
	Task domain.Task
}

func (MsgTaskAdded) sealed() {}

// MsgTaskDone is sent when a task has been marked done.
type MsgTaskDone struct {
	Task        domain.Task
	AlreadyDone bool
}

func (MsgTaskDone) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
