// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory searched for .todo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
	extraPath     string // File given with --config; must exist when set
	lookupEnv     func(string) (string, bool)
}

// NewLoader creates a new Loader.
func NewLoader(workDir, extraPath string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
		extraPath:     extraPath,
		lookupEnv:     os.LookupEnv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir, extraPath string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
		extraPath:     extraPath,
		lookupEnv:     os.LookupEnv,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Sources returns the config file paths in merge order.
func (l *Loader) Sources() []string {
	var paths []string
	if l.globalConfDir != "" {
		paths = append(paths, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	}
	paths = append(paths, domain.LocalConfigPath(l.workDir))
	if l.extraPath != "" {
		paths = append(paths, l.extraPath)
	}
	return paths
}

// Load returns the merged configuration.
// Later sources take precedence: default <- global <- local <- extra <- env.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeFile(base, global)
		}
	}

	local, err := loadFile(domain.LocalConfigPath(l.workDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if local != nil {
		base = mergeFile(base, local)
	}

	if l.extraPath != "" {
		extra, err := loadFile(l.extraPath)
		if err != nil {
			return nil, err
		}
		base = mergeFile(base, extra)
	}

	env, err := loadEnv(l.workDir, l.lookupEnv)
	if err != nil {
		return nil, err
	}
	if env != nil {
		base = mergeFile(base, env)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration merged over defaults.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	f, err := loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}
	return mergeFile(domain.NewDefaultConfig(), f), nil
}

// fileConfig mirrors domain.Config with optional fields so that
// unset keys do not override lower-precedence sources.
type fileConfig struct {
	Storage struct {
		Backend   *string `toml:"backend"`
		Path      *string `toml:"path"`
		Malformed *string `toml:"malformed"`
	} `toml:"storage"`
	Git struct {
		Repo      *string `toml:"repo"`
		Namespace *string `toml:"namespace"`
	} `toml:"git"`
	MySQL struct {
		DSN *string `toml:"dsn"`
	} `toml:"mysql"`
	Postgres struct {
		DSN *string `toml:"dsn"`
	} `toml:"postgres"`
	Log struct {
		Level *string `toml:"level"`
		File  *string `toml:"file"`
	} `toml:"log"`
	UI struct {
		Color *bool `toml:"color"`
	} `toml:"ui"`

	path     string
	warnings []string
}

// loadFile reads and decodes one config file.
// Unknown keys are collected as warnings instead of failing.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fc := &fileConfig{path: path}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(fc)

	var strict *toml.StrictMissingError
	switch {
	case err == nil:
	case errors.As(err, &strict):
		for _, e := range strict.Errors {
			fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key in %s: %s", path, strings.Join(e.Key(), ".")))
		}
	default:
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return fc, nil
}

// mergeFile applies the set fields of f on top of base.
func mergeFile(base *domain.Config, f *fileConfig) *domain.Config {
	res := *base
	res.Warnings = append(append([]string(nil), base.Warnings...), f.warnings...)

	if f.Storage.Backend != nil {
		res.Storage.Backend = domain.Backend(*f.Storage.Backend)
	}
	if f.Storage.Path != nil {
		res.Storage.Path = *f.Storage.Path
		res.Storage.PathSet = true
	}
	if f.Storage.Malformed != nil {
		res.Storage.Malformed = domain.MalformedPolicy(*f.Storage.Malformed)
	}
	if f.Git.Repo != nil {
		res.Git.Repo = *f.Git.Repo
	}
	if f.Git.Namespace != nil {
		res.Git.Namespace = *f.Git.Namespace
	}
	if f.MySQL.DSN != nil {
		res.MySQL.DSN = *f.MySQL.DSN
	}
	if f.Postgres.DSN != nil {
		res.Postgres.DSN = *f.Postgres.DSN
	}
	if f.Log.Level != nil {
		res.Log.Level = *f.Log.Level
	}
	if f.Log.File != nil {
		res.Log.File = *f.Log.File
	}
	if f.UI.Color != nil {
		res.UI.Color = *f.UI.Color
	}

	return &res
}
