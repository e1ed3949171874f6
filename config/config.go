// Package config loads settings from defaults, an optional YAML file, a .env file and DOTSTRIKE_* variables
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dotstrike/audio"
	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/engine"
	"github.com/lixenwraith/dotstrike/store"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DOTSTRIKE_"

var (
	ErrInvalidBackend = errors.New("invalid store backend")
	ErrInvalidLevel   = errors.New("invalid log level")
)

type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type AudioConfig struct {
	Enabled       bool               `yaml:"enabled"`
	MasterVolume  float64            `yaml:"master_volume"`
	SampleRate    int                `yaml:"sample_rate"`
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

type HTTPConfig struct {
	// Addr enables the scoreboard API when non-empty, e.g. "127.0.0.1:8080"
	Addr string `yaml:"addr"`
}

// Config is the complete runtime configuration
type Config struct {
	Difficulty int         `yaml:"difficulty"`
	Seed       int64       `yaml:"seed"` // 0 seeds from the clock
	Store      StoreConfig `yaml:"store"`
	Audio      AudioConfig `yaml:"audio"`
	Log        LogConfig   `yaml:"log"`
	HTTP       HTTPConfig  `yaml:"http"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Difficulty: constants.DifficultyDefault,
		Store: StoreConfig{
			Backend: store.BackendFile,
			Path:    "data/scores.json",
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constants.AudioSampleRate,
		},
		Log: LogConfig{
			Dir:   "logs",
			Level: "info",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (skipped when empty),
// then .env in the working directory (ignored when missing), then DOTSTRIKE_* variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

// applyEnv overrides fields from DOTSTRIKE_* variables; malformed values are errors
func (c *Config) applyEnv(lookup lookupFunc) error {
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}
	parseInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	parseBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	parseInt("DIFFICULTY", &c.Difficulty)
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = n
		}
	}
	if v, ok := get("STORE_BACKEND"); ok {
		c.Store.Backend = v
	}
	if v, ok := get("STORE_PATH"); ok {
		c.Store.Path = v
	}

	parseBool("AUDIO_ENABLED", &c.Audio.Enabled)
	// Master volume is 0-100, matching the audio mixer convention
	if v, ok := get("MASTER_VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sMASTER_VOLUME: %w", EnvPrefix, err))
		} else {
			c.Audio.MasterVolume = float64(n) / 100.0
		}
	}
	parseInt("SAMPLE_RATE", &c.Audio.SampleRate)
	if v, ok := get("SFX_VOLUMES"); ok {
		var vols map[string]float64
		if err := json.Unmarshal([]byte(v), &vols); err != nil {
			errs = append(errs, fmt.Errorf("%sSFX_VOLUMES: %w", EnvPrefix, err))
		} else {
			c.Audio.EffectVolumes = vols
		}
	}

	parseBool("DEBUG", &c.Log.Debug)
	if v, ok := get("LOG_DIR"); ok {
		c.Log.Dir = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("HTTP_ADDR"); ok {
		c.HTTP.Addr = v
	}

	return errors.Join(errs...)
}

// Validate clamps numeric ranges and rejects values that cannot be used
func (c *Config) Validate() error {
	c.Difficulty = engine.ClampDifficulty(c.Difficulty)
	c.Audio.MasterVolume = audio.ClampVolume(c.Audio.MasterVolume)
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = constants.AudioSampleRate
	}

	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case store.BackendMemory, store.BackendFile, store.BackendSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Store.Backend)
	}
	if c.Store.Backend != store.BackendMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path required for backend %q", c.Store.Backend)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.AudioSettings(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured level; empty means info
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	return lvl, nil
}

// AudioSettings converts the audio section into the sound manager's configuration
func (c *Config) AudioSettings() (*audio.AudioConfig, error) {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = audio.ClampVolume(c.Audio.MasterVolume)
	if c.Audio.SampleRate > 0 {
		ac.SampleRate = c.Audio.SampleRate
	}
	if err := ac.SetEffectVolumes(c.Audio.EffectVolumes); err != nil {
		return ac, err
	}
	return ac, nil
}
