// Package sqlstore provides database/sql implementations of TaskRepository
// for MySQL and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/runoshun/todo/internal/domain"
)

// Dialect holds the driver name and SQL differences of one database.
type Dialect struct {
	placeholder func(n int) string
	Name        string // database/sql driver name
}

// Supported dialects.
var (
	MySQL = Dialect{
		Name:        "mysql",
		placeholder: func(int) string { return "?" },
	}
	Postgres = Dialect{
		Name:        "postgres",
		placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	}
)

const createTasks = `CREATE TABLE IF NOT EXISTS todo_tasks (
    position INT PRIMARY KEY,
    description TEXT NOT NULL,
    done BOOLEAN NOT NULL DEFAULT FALSE
)`

func (d Dialect) insertTask() string {
	return fmt.Sprintf(`INSERT INTO todo_tasks (position, description, done) VALUES (%s, %s, %s)`,
		d.placeholder(1), d.placeholder(2), d.placeholder(3))
}

// Store implements domain.TaskRepository on a SQL table.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New opens a connection pool for dsn. No connection is made until first use.
func New(dialect Dialect, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%s: %w", dialect.Name, domain.ErrMissingDSN)
	}
	db, err := sql.Open(dialect.Name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect.Name, err)
	}
	return &Store{db: db, dialect: dialect}, nil
}

// NewWithDB wraps an existing handle.
func NewWithDB(dialect Dialect, db *sql.DB) *Store {
	return &Store{db: db, dialect: dialect}
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTasks); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// Load returns all rows ordered by position.
func (s *Store) Load(ctx context.Context) ([]domain.Task, error) {
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT description, done FROM todo_tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.Description, &t.Done); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	domain.Reindex(tasks)
	return tasks, nil
}

// Save rewrites the table in one transaction, rolling back on any failure.
func (s *Store) Save(ctx context.Context, tasks []domain.Task) (err error) {
	if err := s.migrate(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM todo_tasks`); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	insert := s.dialect.insertTask()
	for i, t := range tasks {
		if _, err = tx.ExecContext(ctx, insert, i+1, t.Description, t.Done); err != nil {
			return fmt.Errorf("insert task %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
