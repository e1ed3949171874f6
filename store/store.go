// Package store persists the high score and score history behind a small key-value port
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Persisted keys
const (
	KeyHighScore = "highScore"
	KeyHistory   = "historyScores"
)

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var (
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrClosed         = errors.New("store closed")
)

// Store is a string key-value store
// Absent keys report ok=false without error
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open creates the named backend; path is ignored by the memory backend
func Open(backend, path string, logger zerolog.Logger) (Store, error) {
	switch strings.ToLower(backend) {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(path, logger)
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
