package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FileStore keeps every key in one JSON object on disk
// Each Set rewrites the file through a temp file and rename
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	log    zerolog.Logger
	closed bool
}

// NewFileStore loads path if it exists; a missing file starts empty
// An undecodable file is renamed aside and the store starts empty; non-string values are dropped
func NewFileStore(path string, logger zerolog.Logger) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store: empty path")
	}
	fs := &FileStore{
		path:   path,
		values: make(map[string]string),
		log:    logger.With().Str("component", "filestore").Str("path", path).Logger(),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fs, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return fs, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		fs.quarantine(err)
		return fs, nil
	}
	for key, msg := range raw {
		var v string
		if err := json.Unmarshal(msg, &v); err != nil {
			fs.log.Warn().Str("key", key).Msg("dropping non-string value")
			continue
		}
		fs.values[key] = v
	}
	return fs, nil
}

// quarantine moves an undecodable file out of the way so the next flush does not destroy it
func (f *FileStore) quarantine(cause error) {
	aside := fmt.Sprintf("%s.corrupt-%d", f.path, time.Now().UnixNano())
	if err := os.Rename(f.path, aside); err != nil {
		f.log.Warn().Err(cause).AnErr("rename", err).Msg("corrupt store file, starting empty")
		return
	}
	f.log.Warn().Err(cause).Str("moved_to", aside).Msg("corrupt store file, starting empty")
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, ErrClosed
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	prev, had := f.values[key]
	f.values[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

func (f *FileStore) flush() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
