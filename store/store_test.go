package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	fs, err := NewFileStore(filepath.Join(dir, "scores.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	sq, err := NewSQLiteStore(filepath.Join(dir, "db", "scores.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { sq.Close() })

	return map[string]Store{
		BackendMemory: NewMemoryStore(),
		BackendFile:   fs,
		BackendSQLite: sq,
	}
}

func TestStoreGetSet(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(ctx, KeyHighScore); err != nil || ok {
				t.Fatalf("Expected absent key, got ok=%v err=%v", ok, err)
			}

			if err := s.Set(ctx, KeyHighScore, "12"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, KeyHighScore, "15"); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}

			v, ok, err := s.Get(ctx, KeyHighScore)
			if err != nil || !ok || v != "15" {
				t.Errorf("Expected 15, got %q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestFileStoreReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "scores.json")

	fs, err := NewFileStore(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := fs.Set(ctx, KeyHistory, "[3,1]"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok, _ := reopened.Get(ctx, KeyHistory)
	if !ok || v != "[3,1]" {
		t.Errorf("Expected persisted history, got %q", v)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the store file, got %d entries", len(entries))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		content   string
		want      map[string]string
		movedAway bool
	}{
		{"not json", "{not json", map[string]string{}, true},
		{"not an object", "[1,2,3]", map[string]string{}, true},
		{
			name:    "non-string value",
			content: `{"highScore": 5, "historyScores": "[5]"}`,
			want:    map[string]string{KeyHistory: "[5]"},
		},
		{
			name:    "all strings",
			content: `{"highScore": "5", "historyScores": "[5]"}`,
			want:    map[string]string{KeyHighScore: "5", KeyHistory: "[5]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "scores.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			fs, err := NewFileStore(path, zerolog.Nop())
			if err != nil {
				t.Fatalf("Expected fallback instead of error, got %v", err)
			}
			for _, key := range []string{KeyHighScore, KeyHistory} {
				v, ok, _ := fs.Get(ctx, key)
				want, wantOK := tt.want[key]
				if ok != wantOK || v != want {
					t.Errorf("%s: expected %q ok=%v, got %q ok=%v", key, want, wantOK, v, ok)
				}
			}

			aside, _ := filepath.Glob(path + ".corrupt-*")
			if tt.movedAway {
				if len(aside) != 1 {
					t.Fatalf("Expected corrupt file moved aside, found %v", aside)
				}
				data, _ := os.ReadFile(aside[0])
				if string(data) != tt.content {
					t.Errorf("Expected original content preserved, got %q", data)
				}
			} else if len(aside) != 0 {
				t.Errorf("Expected file left in place, found %v", aside)
			}

			// Store stays writable and the rewrite replaces the bad file
			if err := fs.Set(ctx, KeyHighScore, "7"); err != nil {
				t.Fatalf("Set after fallback: %v", err)
			}
			reopened, err := NewFileStore(path, zerolog.Nop())
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			if v, ok, _ := reopened.Get(ctx, KeyHighScore); !ok || v != "7" {
				t.Errorf("Expected 7 after reopen, got %q ok=%v", v, ok)
			}
		})
	}
}

func TestSQLiteStoreReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := s.Set(ctx, KeyHighScore, "9"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	s, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get(ctx, KeyHighScore)
	if err != nil || !ok || v != "9" {
		t.Errorf("Expected 9 after reopen, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"memory", false},
		{"", false},
		{"FILE", false},
		{"sqlite", false},
		{"redis", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, err := Open(tt.backend, filepath.Join(dir, tt.backend+".store"), zerolog.Nop())
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBackend) {
					t.Errorf("Expected ErrUnknownBackend, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open(%q): %v", tt.backend, err)
			}
			s.Close()
		})
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	s := NewMemoryStore()
	s.Close()
	if err := s.Set(context.Background(), "k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}
