package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ClearTasksInput contains the parameters for clearing tasks.
type ClearTasksInput struct{}

// ClearTasksOutput contains the result of clearing tasks.
type ClearTasksOutput struct {
	Removed int // Number of tasks that existed before clearing
}

// ClearTasks is the use case for removing every task.
type ClearTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(tasks domain.TaskRepository, logger domain.Logger) *ClearTasks {
	return &ClearTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute rewrites the list as empty.
// The previous count is best effort: a list that cannot be read is still cleared.
func (uc *ClearTasks) Execute(ctx context.Context, _ ClearTasksInput) (*ClearTasksOutput, error) {
	removed := 0
	if tasks, err := uc.tasks.Load(ctx); err == nil {
		removed = len(tasks)
	}

	if err := uc.tasks.Save(ctx, []domain.Task{}); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("tasks cleared (%d removed)", removed))
	}

	return &ClearTasksOutput{Removed: removed}, nil
}
