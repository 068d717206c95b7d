package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvFileName is read from the working directory when present.
const DotEnvFileName = ".env"

// Environment variables that override config files.
const (
	EnvBackend     = "TODO_BACKEND"
	EnvFile        = "TODO_FILE"
	EnvMalformed   = "TODO_MALFORMED"
	EnvLogLevel    = "TODO_LOG_LEVEL"
	EnvMySQLDSN    = "TODO_MYSQL_DSN"
	EnvPostgresDSN = "TODO_POSTGRES_DSN"
)

// loadEnv collects overrides from the process environment and workDir/.env.
// Process variables win over .env entries. Returns nil when nothing is set.
func loadEnv(workDir string, lookup func(string) (string, bool)) (*fileConfig, error) {
	path := filepath.Join(workDir, DotEnvFileName)
	dotenv, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		dotenv = map[string]string{}
	}

	get := func(key string) *string {
		if v, ok := lookup(key); ok && v != "" {
			return &v
		}
		if v, ok := dotenv[key]; ok && v != "" {
			return &v
		}
		return nil
	}

	fc := &fileConfig{path: "environment"}
	fc.Storage.Backend = get(EnvBackend)
	fc.Storage.Path = get(EnvFile)
	fc.Storage.Malformed = get(EnvMalformed)
	fc.Log.Level = get(EnvLogLevel)
	fc.MySQL.DSN = get(EnvMySQLDSN)
	fc.Postgres.DSN = get(EnvPostgresDSN)

	if fc.Storage.Backend == nil && fc.Storage.Path == nil && fc.Storage.Malformed == nil &&
		fc.Log.Level == nil && fc.MySQL.DSN == nil && fc.Postgres.DSN == nil {
		return nil, nil
	}
	return fc, nil
}
