// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/export"
	"github.com/runoshun/todo/internal/infra/gitstore"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/sqlitestore"
	"github.com/runoshun/todo/internal/infra/sqlstore"
	"github.com/runoshun/todo/internal/infra/textstore"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the resolved paths and backend of one invocation.
type Config struct {
	WorkDir   string         // Directory the command runs in
	StorePath string         // Resolved storage location (file path, repo path or DSN host)
	LogPath   string         // Operation log file, empty when disabled
	Backend   domain.Backend // Selected storage backend
}

// Options carries command line overrides applied on top of the config files.
type Options struct {
	File       string // --file: storage path
	Backend    string // --backend: storage backend
	ConfigPath string // --config: extra config file
	NoStorage  bool   // Load configuration only; do not open a backend
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	Exporter      domain.TaskExporter
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	OpLogger      domain.Logger

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	stderr    io.Writer
	closers   []io.Closer

	// Configuration
	Config Config
	opened bool
}

// New creates a Container for workDir.
// Storage is not available until Open is called with the parsed command line.
func New(workDir string, stderr io.Writer) *Container {
	return &Container{
		Exporter:      export.Exporter{},
		ConfigManager: config.NewManager(workDir),
		ConfigLoader:  config.NewLoader(workDir, ""),
		OpLogger:      domain.NopLogger{},
		Logger:        newSlogLogger(stderr, slog.LevelInfo),
		AppConfig:     domain.NewDefaultConfig(),
		stderr:        stderr,
		Config:        Config{WorkDir: workDir},
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// The returned container is already open.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, logger *slog.Logger) *Container {
	return &Container{
		Tasks:         tasks,
		Exporter:      export.Exporter{},
		ConfigLoader:  config.NewLoaderWithGlobalDir(cfg.WorkDir, "", ""),
		ConfigManager: config.NewManagerWithGlobalDir(cfg.WorkDir, ""),
		OpLogger:      domain.NopLogger{},
		Logger:        logger,
		AppConfig:     domain.NewDefaultConfig(),
		Config:        cfg,
		opened:        true,
	}
}

func newSlogLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Open loads configuration, applies opts and connects the storage backend.
// Calling Open on an open container is a no-op.
func (c *Container) Open(opts Options) error {
	if c.opened {
		return nil
	}

	loader := config.NewLoader(c.Config.WorkDir, opts.ConfigPath)
	c.ConfigLoader = loader

	cfg, err := loader.Load()
	if err != nil {
		if opts.NoStorage {
			// config show reports the error itself
			return nil
		}
		return fmt.Errorf("load config: %w", err)
	}

	if err := applyOptions(cfg, opts); err != nil {
		return err
	}
	cfg.ApplyDefaultPath()
	cfg.ResolvePaths(c.Config.WorkDir)
	c.AppConfig = cfg

	c.Logger = newSlogLogger(c.stderr, logging.ParseLevel(cfg.Log.Level)).With("run", uuid.NewString())
	for _, w := range cfg.Warnings {
		c.Logger.Warn("config warning", "detail", w)
	}

	if opts.NoStorage {
		return nil
	}

	opLogger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	c.OpLogger = opLogger
	c.closers = append(c.closers, opLogger)

	repo, closer, location, err := newTaskRepository(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		c.closers = append(c.closers, closer)
	}

	c.Tasks = repo
	c.Config.Backend = cfg.Storage.Backend
	c.Config.StorePath = location
	c.Config.LogPath = cfg.Log.File
	c.opened = true

	c.Logger.Debug("storage opened", "backend", cfg.Storage.Backend, "location", location)
	return nil
}

// applyOptions overlays command line flags on cfg.
func applyOptions(cfg *domain.Config, opts Options) error {
	if opts.Backend != "" {
		cfg.Storage.Backend = domain.Backend(strings.ToLower(opts.Backend))
	}
	if opts.File != "" {
		cfg.Storage.Path = opts.File
		cfg.Storage.PathSet = true
	}
	return cfg.Validate()
}

// newTaskRepository builds the backend selected by cfg.
// It returns the repository, an optional closer and a display location.
func newTaskRepository(cfg *domain.Config) (domain.TaskRepository, io.Closer, string, error) {
	switch cfg.Storage.Backend {
	case domain.BackendText:
		return textstore.New(cfg.Storage.Path, cfg.Storage.Malformed), nil, cfg.Storage.Path, nil
	case domain.BackendJSON:
		return jsonstore.New(cfg.Storage.Path), nil, cfg.Storage.Path, nil
	case domain.BackendSQLite:
		return sqlitestore.New(cfg.Storage.Path), nil, cfg.Storage.Path, nil
	case domain.BackendGit:
		store, err := gitstore.New(cfg.Git.Repo, cfg.Git.Namespace, cfg.Storage.Malformed)
		if err != nil {
			return nil, nil, "", err
		}
		return store, nil, cfg.Git.Repo + " " + domain.TaskRefName(cfg.Git.Namespace), nil
	case domain.BackendMySQL:
		store, err := sqlstore.New(sqlstore.MySQL, cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, "", err
		}
		return store, store, "mysql", nil
	case domain.BackendPostgres:
		store, err := sqlstore.New(sqlstore.Postgres, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, "", err
		}
		return store, store, "postgres", nil
	default:
		return nil, nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Storage.Backend)
	}
}

// Close releases backend connections and the operation log.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.OpLogger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.OpLogger)
}

// MarkDoneUseCase returns a new MarkDone use case.
func (c *Container) MarkDoneUseCase() *usecase.MarkDone {
	return usecase.NewMarkDone(c.Tasks, c.OpLogger)
}

// ClearTasksUseCase returns a new ClearTasks use case.
func (c *Container) ClearTasksUseCase() *usecase.ClearTasks {
	return usecase.NewClearTasks(c.Tasks, c.OpLogger)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, c.Exporter, c.OpLogger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
