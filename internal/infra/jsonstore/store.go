// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/textstore"
)

// storeData represents the JSON file structure.
type storeData struct {
	Tasks []taskData `json:"tasks"`
}

// taskData is the JSON representation of a task (without index, which is the position).
type taskData struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Store implements domain.TaskRepository using a JSON file.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Load retrieves all tasks in stored order.
func (s *Store) Load(_ context.Context) ([]domain.Task, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		tasks = append(tasks, domain.Task{
			Description: t.Description,
			Done:        t.Done,
		})
	}
	domain.Reindex(tasks)
	return tasks, nil
}

// Save replaces the stored task list.
func (s *Store) Save(_ context.Context, tasks []domain.Task) error {
	data := &storeData{Tasks: make([]taskData, 0, len(tasks))}
	for _, t := range tasks {
		data.Tasks = append(data.Tasks, taskData{
			Description: t.Description,
			Done:        t.Done,
		})
	}
	return s.write(data)
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &storeData{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if len(content) == 0 {
		return &data, nil
	}
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}
	content = append(content, '\n')

	// Write to temp file first, then rename for atomicity
	return textstore.WriteFileAtomic(s.path, content)
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
