package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadEnv_NothingSet(t *testing.T) {
	fc, err := loadEnv(t.TempDir(), lookupFrom(nil))
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func TestLoader_Load_EnvOverridesFiles(t *testing.T) {
	// Setup
	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, domain.LocalConfigFileName), `
[storage]
backend = "json"
path = "local.json"

[postgres]
dsn = "from-file"
`)
	loader := NewLoaderWithGlobalDir(workDir, t.TempDir(), "")
	loader.lookupEnv = lookupFrom(map[string]string{
		EnvBackend:     "postgres",
		EnvPostgresDSN: "postgres://localhost/todo",
		EnvFile:        "",
	})

	// Execute
	cfg, err := loader.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, "postgres://localhost/todo", cfg.Postgres.DSN)
	assert.Equal(t, "local.json", cfg.Storage.Path, "empty variable is ignored")
}

func TestLoader_Load_DotEnv(t *testing.T) {
	// Setup
	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, DotEnvFileName), `
# database credentials
TODO_MYSQL_DSN="user:secret@tcp(db:3306)/todo"
TODO_LOG_LEVEL=debug
TODO_MALFORMED=skip
`)
	loader := NewLoaderWithGlobalDir(workDir, t.TempDir(), "")
	loader.lookupEnv = lookupFrom(map[string]string{EnvLogLevel: "warn"})

	// Execute
	cfg, err := loader.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "user:secret@tcp(db:3306)/todo", cfg.MySQL.DSN)
	assert.Equal(t, domain.MalformedSkip, cfg.Storage.Malformed)
	assert.Equal(t, "warn", cfg.Log.Level, "process env wins over .env")
}

func TestLoader_Load_EnvInvalidBackend(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir(), "")
	loader.lookupEnv = lookupFrom(map[string]string{EnvBackend: "redis"})

	_, err := loader.Load()
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}
