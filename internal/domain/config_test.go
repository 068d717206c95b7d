package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, BackendText, cfg.Storage.Backend)
	assert.Equal(t, DefaultStoragePath, cfg.Storage.Path)
	assert.Equal(t, MalformedKeep, cfg.Storage.Malformed)
	assert.Equal(t, DefaultGitNamespace, cfg.Git.Namespace)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.True(t, cfg.UI.Color)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Storage.Backend = "redis"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownBackend)

	cfg = NewDefaultConfig()
	cfg.Storage.Malformed = "ignore"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownPolicy)

	for _, b := range AllBackends() {
		cfg = NewDefaultConfig()
		cfg.Storage.Backend = b
		assert.NoError(t, cfg.Validate(), b)
	}
}

func TestConfig_ResolvePaths(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "tasks.txt")

	cfg := NewDefaultConfig()
	cfg.Log.File = "todo.log"
	cfg.ResolvePaths(dir)

	assert.Equal(t, filepath.Join(dir, DefaultStoragePath), cfg.Storage.Path)
	assert.Equal(t, dir, cfg.Git.Repo)
	assert.Equal(t, filepath.Join(dir, "todo.log"), cfg.Log.File)

	cfg = NewDefaultConfig()
	cfg.Storage.Path = abs
	cfg.ResolvePaths(dir)
	assert.Equal(t, abs, cfg.Storage.Path)
	assert.Empty(t, cfg.Log.File)
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	content := RenderConfigTemplate(NewDefaultConfig())

	assert.Contains(t, content, `backend = "text"`)
	assert.Contains(t, content, "text | json | git | sqlite | mysql | postgres")
	assert.False(t, strings.Contains(content, "<<"), "template delimiters left in output")

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, BackendText, parsed.Storage.Backend)
	assert.Equal(t, MalformedKeep, parsed.Storage.Malformed)
	assert.Equal(t, DefaultGitNamespace, parsed.Git.Namespace)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u/.config", "todo", "config.toml"), GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, filepath.Join("/work", ".todo.toml"), LocalConfigPath("/work"))
}

func TestStoragePathFor(t *testing.T) {
	assert.Equal(t, "todos.txt", StoragePathFor(BackendText))
	assert.Equal(t, "todos.json", StoragePathFor(BackendJSON))
	assert.Equal(t, "todos.db", StoragePathFor(BackendSQLite))
	assert.Equal(t, "todos.txt", StoragePathFor(BackendGit))
}

func TestConfig_ApplyDefaultPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		backend Backend
		set     bool
	}{
		{"unset follows backend", DefaultStoragePath, "todos.json", BackendJSON, false},
		{"explicit default name is kept", DefaultStoragePath, "todos.txt", BackendJSON, true},
		{"explicit path is kept", "mine.txt", "mine.txt", BackendSQLite, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.Storage.Backend = tt.backend
			cfg.Storage.Path = tt.path
			cfg.Storage.PathSet = tt.set

			cfg.ApplyDefaultPath()

			assert.Equal(t, tt.want, cfg.Storage.Path)
		})
	}
}
