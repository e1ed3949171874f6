package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotstrike/audio"
	"github.com/lixenwraith/dotstrike/store"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.Difficulty != 5 {
		t.Errorf("Expected default difficulty 5, got %d", cfg.Difficulty)
	}
	if cfg.Store.Backend != store.BackendFile {
		t.Errorf("Expected file backend by default, got %q", cfg.Store.Backend)
	}
	if cfg.HTTP.Addr != "" {
		t.Error("Expected HTTP API disabled by default")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "dotstrike.yaml", `
difficulty: 8
seed: 42
store:
  backend: SQLite
  path: /tmp/scores.db
audio:
  enabled: false
  master_volume: 0.25
  effect_volumes:
    miss: 0.1
log:
  debug: true
  level: debug
http:
  addr: 127.0.0.1:9090
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Difficulty != 8 || cfg.Seed != 42 {
		t.Errorf("Expected difficulty 8 seed 42, got %d %d", cfg.Difficulty, cfg.Seed)
	}
	if cfg.Store.Backend != store.BackendSQLite || cfg.Store.Path != "/tmp/scores.db" {
		t.Errorf("Unexpected store section %+v", cfg.Store)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Unexpected audio section %+v", cfg.Audio)
	}
	if !cfg.Log.Debug || cfg.HTTP.Addr != "127.0.0.1:9090" {
		t.Errorf("Unexpected log/http sections %+v %+v", cfg.Log, cfg.HTTP)
	}
	// Unset keys keep their defaults
	if cfg.Log.Dir != "logs" {
		t.Errorf("Expected default log dir, got %q", cfg.Log.Dir)
	}
	if lvl, _ := cfg.LogLevel(); lvl != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", lvl)
	}

	ac, err := cfg.AudioSettings()
	if err != nil {
		t.Fatalf("AudioSettings: %v", err)
	}
	if ac.Enabled || ac.EffectVolumes[audio.SoundMiss] != 0.1 {
		t.Errorf("Expected disabled audio with miss 0.1, got %+v", ac)
	}
	if ac.EffectVolumes[audio.SoundHit] != 1.0 {
		t.Error("Expected hit volume to keep its default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for an explicit missing config file")
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty != Default().Difficulty {
		t.Errorf("Expected default difficulty, got %d", cfg.Difficulty)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "dotstrike.yaml", "difficulty: 3\nstore:\n  backend: file\n  path: a.json\n")

	t.Setenv("DOTSTRIKE_DIFFICULTY", "9")
	t.Setenv("DOTSTRIKE_STORE_BACKEND", "memory")
	t.Setenv("DOTSTRIKE_MASTER_VOLUME", "80")
	t.Setenv("DOTSTRIKE_SFX_VOLUMES", `{"hit":0.5}`)
	t.Setenv("DOTSTRIKE_HTTP_ADDR", ":8081")
	t.Setenv("DOTSTRIKE_DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty != 9 {
		t.Errorf("Expected env difficulty 9, got %d", cfg.Difficulty)
	}
	if cfg.Store.Backend != store.BackendMemory {
		t.Errorf("Expected memory backend, got %q", cfg.Store.Backend)
	}
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.EffectVolumes["hit"] != 0.5 {
		t.Errorf("Expected hit volume from env, got %v", cfg.Audio.EffectVolumes)
	}
	if cfg.HTTP.Addr != ":8081" || !cfg.Log.Debug {
		t.Errorf("Expected http and debug overrides, got %+v %+v", cfg.HTTP, cfg.Log)
	}
}

func TestEnvMalformed(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"difficulty", "DOTSTRIKE_DIFFICULTY", "hard"},
		{"seed", "DOTSTRIKE_SEED", "x"},
		{"debug", "DOTSTRIKE_DEBUG", "maybe"},
		{"volumes", "DOTSTRIKE_SFX_VOLUMES", "{not json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); err == nil {
				t.Errorf("Expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		check   func(*testing.T, *Config)
	}{
		{
			name:   "difficulty clamped high",
			mutate: func(c *Config) { c.Difficulty = 50 },
			check: func(t *testing.T, c *Config) {
				if c.Difficulty != 10 {
					t.Errorf("Expected 10, got %d", c.Difficulty)
				}
			},
		},
		{
			name:   "difficulty clamped low",
			mutate: func(c *Config) { c.Difficulty = -3 },
			check: func(t *testing.T, c *Config) {
				if c.Difficulty != 1 {
					t.Errorf("Expected 1, got %d", c.Difficulty)
				}
			},
		},
		{
			name:   "volume clamped",
			mutate: func(c *Config) { c.Audio.MasterVolume = 3 },
			check: func(t *testing.T, c *Config) {
				if c.Audio.MasterVolume != 1 {
					t.Errorf("Expected 1, got %f", c.Audio.MasterVolume)
				}
			},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Store.Backend = "redis" },
			wantErr: ErrInvalidBackend,
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: ErrInvalidLevel,
		},
		{
			name:   "file backend needs path",
			mutate: func(c *Config) { c.Store.Path = "" },
		},
		{
			name:   "unknown effect",
			mutate: func(c *Config) { c.Audio.EffectVolumes = map[string]float64{"boom": 1} },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.check != nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				tt.check(t, cfg)
				return
			}
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
