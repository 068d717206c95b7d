// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Description string // Task description; line breaks are folded to spaces
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The appended task with its index
}

// AddTask is the use case for appending a pending task.
type AddTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute loads the list, appends the task and rewrites the list.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	tasks, err := uc.tasks.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task := domain.Task{
		Description: domain.NormalizeDescription(in.Description),
		Index:       len(tasks) + 1,
	}
	tasks = append(tasks, task)

	if err := uc.tasks.Save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("task added: %q", task.Description))
	}

	return &AddTaskOutput{Task: task}, nil
}
