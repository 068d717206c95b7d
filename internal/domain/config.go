package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Git      GitConfig     `toml:"git"`
	MySQL    SQLConfig     `toml:"mysql"`
	Postgres SQLConfig     `toml:"postgres"`
	Log      LogConfig     `toml:"log"`
	UI       UIConfig      `toml:"ui"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend   Backend         `toml:"backend"`   // Storage backend name
	Path      string          `toml:"path"`      // File path for text, json and sqlite backends
	Malformed MalformedPolicy `toml:"malformed"` // How to treat lines without a status marker
	PathSet   bool            `toml:"-"`         // Path came from a config file, env or flag
}

// GitConfig holds settings from the [git] section.
type GitConfig struct {
	Repo      string `toml:"repo"`      // Repository that holds the task ref
	Namespace string `toml:"namespace"` // Ref namespace (refs/<namespace>/tasks)
}

// SQLConfig holds settings from the [mysql] and [postgres] sections.
type SQLConfig struct {
	DSN string `toml:"dsn"` // Driver data source name
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Operation log path; empty disables
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	Color bool `toml:"color"` // Colour status markers
}

// Backend names a TaskRepository implementation.
type Backend string

// Supported storage backends.
const (
	BackendText     Backend = "text"
	BackendJSON     Backend = "json"
	BackendGit      Backend = "git"
	BackendSQLite   Backend = "sqlite"
	BackendMySQL    Backend = "mysql"
	BackendPostgres Backend = "postgres"
)

// AllBackends returns every supported backend.
func AllBackends() []Backend {
	return []Backend{BackendText, BackendJSON, BackendGit, BackendSQLite, BackendMySQL, BackendPostgres}
}

// IsValid returns true if the backend is known.
func (b Backend) IsValid() bool {
	for _, known := range AllBackends() {
		if b == known {
			return true
		}
	}
	return false
}

// MalformedPolicy decides what happens to a persisted line with no status marker.
type MalformedPolicy string

const (
	MalformedKeep MalformedPolicy = "keep" // Whole line becomes a pending task
	MalformedSkip MalformedPolicy = "skip" // Line is dropped
	MalformedFail MalformedPolicy = "fail" // Load fails with ErrMalformedLine
)

// IsValid returns true if the policy is known.
func (p MalformedPolicy) IsValid() bool {
	switch p {
	case MalformedKeep, MalformedSkip, MalformedFail:
		return true
	default:
		return false
	}
}

// Default configuration values.
const (
	DefaultStoragePath  = "todos.txt"
	DefaultGitNamespace = "todo"
	DefaultLogLevel     = "info"
)

// File names and directories.
const (
	AppDirName          = "todo"        // Global config dir under XDG_CONFIG_HOME
	ConfigFileName      = "config.toml" // Global config file name
	LocalConfigFileName = ".todo.toml"  // Per-directory config file name
)

// StoragePathFor returns the default storage file name for backend.
func StoragePathFor(backend Backend) string {
	switch backend {
	case BackendJSON:
		return "todos.json"
	case BackendSQLite:
		return "todos.db"
	default:
		return DefaultStoragePath
	}
}

// ApplyDefaultPath replaces an unset storage path with the backend default.
func (c *Config) ApplyDefaultPath() {
	if !c.Storage.PathSet {
		c.Storage.Path = StoragePathFor(c.Storage.Backend)
	}
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the local config path for a working directory.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   BackendText,
			Path:      DefaultStoragePath,
			Malformed: MalformedKeep,
		},
		Git: GitConfig{
			Repo:      ".",
			Namespace: DefaultGitNamespace,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !c.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	if !c.Storage.Malformed.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.Storage.Malformed)
	}
	return nil
}

// ResolvePaths makes relative file paths absolute against dir.
func (c *Config) ResolvePaths(dir string) {
	if c.Storage.Path != "" && !filepath.IsAbs(c.Storage.Path) {
		c.Storage.Path = filepath.Join(dir, c.Storage.Path)
	}
	if c.Git.Repo != "" && !filepath.IsAbs(c.Git.Repo) {
		c.Git.Repo = filepath.Join(dir, c.Git.Repo)
	}
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		c.Log.File = filepath.Join(dir, c.Log.File)
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Backend   Backend
	Path      string
	Malformed MalformedPolicy
	Namespace string
	LogLevel  string
	Backends  []Backend
}

// RenderConfigTemplate renders the commented config template for cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Backend:   cfg.Storage.Backend,
		Path:      cfg.Storage.Path,
		Malformed: cfg.Storage.Malformed,
		Namespace: cfg.Git.Namespace,
		LogLevel:  cfg.Log.Level,
		Backends:  AllBackends(),
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
