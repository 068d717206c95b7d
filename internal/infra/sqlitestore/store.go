// Package sqlitestore provides a SQLite implementation of TaskRepository.
package sqlitestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/runoshun/todo/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY,
	description TEXT    NOT NULL,
	done        INTEGER NOT NULL DEFAULT 0
);`

// Store implements domain.TaskRepository using a SQLite database file.
// A connection is opened for each operation and closed before it returns.
type Store struct {
	path string
}

// New creates a new Store for the given database path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns all tasks ordered by position.
// A missing database file is an empty list and is not created.
func (s *Store) Load(ctx context.Context) (tasks []domain.Task, err error) {
	if _, statErr := os.Stat(s.path); errors.Is(statErr, os.ErrNotExist) {
		return []domain.Task{}, nil
	}

	conn, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	tasks = []domain.Task{}
	err = sqlitex.ExecuteTransient(conn, "SELECT description, done FROM tasks ORDER BY position;", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			tasks = append(tasks, domain.Task{
				Description: stmt.ColumnText(0),
				Done:        stmt.ColumnInt64(1) != 0,
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	domain.Reindex(tasks)
	return tasks, nil
}

// Save replaces every row inside a savepoint; any failure rolls back.
func (s *Store) Save(ctx context.Context, tasks []domain.Task) (err error) {
	conn, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	defer sqlitex.Save(conn)(&err)

	if err = sqlitex.ExecuteTransient(conn, "DELETE FROM tasks;", nil); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	for i, t := range tasks {
		done := 0
		if t.Done {
			done = 1
		}
		err = sqlitex.ExecuteTransient(conn, "INSERT INTO tasks (position, description, done) VALUES (?, ?, ?);", &sqlitex.ExecOptions{
			Args: []any{i + 1, t.Description, done},
		})
		if err != nil {
			return fmt.Errorf("insert task %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Store) open(ctx context.Context) (*sqlite.Conn, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	conn, err := sqlite.OpenConn(s.path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	conn.SetInterrupt(ctx.Done())

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return conn, nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
