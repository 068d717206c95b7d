package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// MarkDoneInput contains the parameters for completing a task.
type MarkDoneInput struct {
	Index int // 1-based task number
}

// MarkDoneOutput contains the result of completing a task.
type MarkDoneOutput struct {
	Task        domain.Task // The task after the update
	AlreadyDone bool        // Task was done before this call
}

// MarkDone is the use case for marking a task as done.
type MarkDone struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewMarkDone creates a new MarkDone use case.
func NewMarkDone(tasks domain.TaskRepository, logger domain.Logger) *MarkDone {
	return &MarkDone{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute marks the task at in.Index as done and rewrites the list.
// An index outside 1..len returns domain.ErrInvalidIndex and nothing is written.
func (uc *MarkDone) Execute(ctx context.Context, in MarkDoneInput) (*MarkDoneOutput, error) {
	tasks, err := uc.tasks.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	if !domain.ValidIndex(in.Index, len(tasks)) {
		if uc.logger != nil {
			uc.logger.Warn("task", fmt.Sprintf("invalid task number %d (have %d)", in.Index, len(tasks)))
		}
		return nil, fmt.Errorf("task %d: %w", in.Index, domain.ErrInvalidIndex)
	}

	task := &tasks[in.Index-1]
	wasDone := task.Done
	task.Done = true

	if err := uc.tasks.Save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("task %d done", in.Index))
	}

	return &MarkDoneOutput{Task: *task, AlreadyDone: wasDone}, nil
}
