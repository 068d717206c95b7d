package domain

import (
	"context"
	"io"
)

// TaskRepository persists the ordered task sequence.
// Implementations always rewrite the whole sequence; there is no per-record update.
type TaskRepository interface {
	// Load returns every task in persisted order with indices assigned.
	// An absent medium yields an empty slice and no error.
	Load(ctx context.Context) ([]Task, error)

	// Save replaces the persisted sequence with tasks.
	Save(ctx context.Context, tasks []Task) error
}

// TaskExporter renders a task list in a named document format.
type TaskExporter interface {
	// Export writes tasks to w. Unknown formats return ErrUnknownFormat.
	Export(w io.Writer, format string, tasks []Task) error

	// IsBinary reports whether format produces output unfit for a terminal.
	IsBinary(format string) bool

	// WriteFile replaces path with data atomically.
	WriteFile(path string, data []byte) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default + global + local + extra + env).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager reports on and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file rendered from cfg.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig creates the local config file rendered from cfg.
	InitLocalConfig(cfg *Config) error
}

// ConfigInfo describes one configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger records operations to the operation log.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string, string)  {}
func (NopLogger) Debug(string, string) {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
