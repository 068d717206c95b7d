// Package textstore provides the plain-text implementation of TaskRepository.
//
// The file holds one task per line in the form "<marker> <description>",
// where the marker is "[ ]" for pending and "[x]" for done tasks.
package textstore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store implements domain.TaskRepository using a flat text file.
type Store struct {
	path      string
	malformed domain.MalformedPolicy
}

// New creates a new Store for the given file path.
// The file does not need to exist; it is created on first write.
func New(path string, malformed domain.MalformedPolicy) *Store {
	if malformed == "" {
		malformed = domain.MalformedKeep
	}
	return &Store{
		path:      path,
		malformed: malformed,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every task from the file.
// A missing file is an empty list.
func (s *Store) Load(_ context.Context) ([]domain.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer func() { _ = f.Close() }()

	tasks, err := Decode(f, s.malformed)
	if err != nil {
		return nil, fmt.Errorf("read task file %s: %w", s.path, err)
	}
	return tasks, nil
}

// Save rewrites the file with tasks.
// Content is written to a temporary sibling and renamed over the target.
func (s *Store) Save(_ context.Context, tasks []domain.Task) error {
	return WriteFileAtomic(s.path, []byte(Encode(tasks)))
}

// Decode parses the text format.
// Empty lines are ignored; lines without a marker follow the policy.
func Decode(r io.Reader, policy domain.MalformedPolicy) ([]domain.Task, error) {
	tasks := []domain.Task{}
	reader := bufio.NewReader(r)

	lineNo := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if raw == "" && err != nil {
			break
		}
		lineNo++

		line := strings.TrimRight(raw, "\r\n")
		if line != "" {
			task, ok := domain.ParseLine(line)
			if !ok {
				switch policy {
				case domain.MalformedSkip:
					continue
				case domain.MalformedFail:
					return nil, fmt.Errorf("line %d: %w", lineNo, domain.ErrMalformedLine)
				default:
					task = domain.Task{Description: line}
				}
			}
			tasks = append(tasks, task)
		}
		if err != nil {
			break
		}
	}

	domain.Reindex(tasks)
	return tasks, nil
}

// Encode renders tasks in the text format, one line per task.
func Encode(tasks []domain.Task) string {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(t.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFileAtomic writes data to a temporary file next to path, syncs it,
// and renames it over path.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := domain.TempPath(path)
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
