package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/todo/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
// Fields are ordered to minimize memory padding.
type ExportTasksInput struct {
	Stdout     io.Writer           // Destination when OutputPath is empty
	Format     string              // Export format name
	OutputPath string              // File to write; empty writes to Stdout
	Filter     domain.StatusFilter // Status filter
}

// ExportTasksOutput contains the result of exporting tasks.
type ExportTasksOutput struct {
	Path  string // File written, empty for Stdout
	Count int    // Number of exported tasks
}

// ExportTasks is the use case for rendering the task list to a document.
type ExportTasks struct {
	tasks    domain.TaskRepository
	exporter domain.TaskExporter
	logger   domain.Logger
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository, exporter domain.TaskExporter, logger domain.Logger) *ExportTasks {
	return &ExportTasks{
		tasks:    tasks,
		exporter: exporter,
		logger:   logger,
	}
}

// Execute renders the filtered task list.
func (uc *ExportTasks) Execute(ctx context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	if in.OutputPath == "" && uc.exporter.IsBinary(in.Format) {
		return nil, fmt.Errorf("%s: %w", in.Format, domain.ErrOutputRequired)
	}

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

	if in.OutputPath == "" {
		if err := uc.render(in.Stdout, in.Format, matched); err != nil {
			return nil, err
		}
	} else {
		// Render fully before touching the target so a failed export leaves it intact.
		var buf bytes.Buffer
		if err := uc.render(&buf, in.Format, matched); err != nil {
			return nil, err
		}
		if err := uc.exporter.WriteFile(in.OutputPath, buf.Bytes()); err != nil {
			return nil, fmt.Errorf("write output file: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("export", fmt.Sprintf("exported %d tasks as %s", len(matched), in.Format))
	}

	return &ExportTasksOutput{Path: in.OutputPath, Count: len(matched)}, nil
}

func (uc *ExportTasks) render(w io.Writer, format string, tasks []domain.Task) error {
	if err := uc.exporter.Export(w, format, tasks); err != nil {
		if errors.Is(err, domain.ErrUnknownFormat) {
			return err
		}
		return fmt.Errorf("export tasks: %w", err)
	}
	return nil
}
