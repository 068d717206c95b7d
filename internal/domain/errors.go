package domain

import "errors"

// Domain errors.
var (
	ErrInvalidIndex     = errors.New("invalid task number")
	ErrMalformedLine    = errors.New("malformed task line")
	ErrUnknownBackend   = errors.New("unknown storage backend")
	ErrUnknownPolicy    = errors.New("unknown malformed-line policy")
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrOutputRequired   = errors.New("output file required for this format")
	ErrConfigExists     = errors.New("config file already exists")
	ErrMissingDSN       = errors.New("database dsn not configured")
	ErrNotGitRepository = errors.New("not a git repository")
)
