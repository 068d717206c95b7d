package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.StatusFilter // Status filter; indices are kept from the full list
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task // Matching tasks in persisted order
	Total int           // Number of tasks before filtering
}

// ListTasks is the use case for reading the task list.
type ListTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, logger domain.Logger) *ListTasks {
	return &ListTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute returns the tasks that pass the filter.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	matched := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if in.Filter.Match(t) {
			matched = append(matched, t)
		}
	}

	if uc.logger != nil {
		uc.logger.Debug("task", fmt.Sprintf("listed %d of %d tasks", len(matched), len(tasks)))
	}

	return &ListTasksOutput{Tasks: matched, Total: len(tasks)}, nil
}
