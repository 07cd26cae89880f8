// Package config loads and validates lvbound run configurations.
//
// A configuration is read from YAML, then LVBOUND_* environment variables
// override individual fields, then struct tags are checked with
// go-playground/validator. Zero values mean "use the default".
//
// Example file:
//
//	structure: binarytree
//	size: 4
//	search:
//	  max_candidates: 100000
//	  ranges: 2
//	  workers: 2
//	log:
//	  level: debug
//	  json: true
//	checkpoint:
//	  path: /tmp/tree.ckpt
//	  every: 1000
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid indicates a configuration that fails validation.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrInvalidEnv indicates an LVBOUND_* variable that does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment override")
)

// Config is one generation run.
type Config struct {
	// Structure names a registered structure (see `lvbound list`).
	Structure string `yaml:"structure" validate:"required"`

	// Size is the finitization bound passed to the structure.
	Size int `yaml:"size" validate:"gte=0,lte=16"`

	Search     SearchConfig     `yaml:"search"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Checkpoint CheckpointConfig `yaml:"checkpoint"`
}

// SearchConfig bounds the explored region.
type SearchConfig struct {
	Start         []int `yaml:"start" validate:"omitempty,dive,gte=0"`
	End           []int `yaml:"end" validate:"omitempty,dive,gte=0"`
	MaxCandidates int   `yaml:"max_candidates" validate:"gte=0"`

	// Ranges splits the search into that many concurrent ranges; 1 runs a
	// single explorer. Incompatible with Start, End and checkpoints.
	Ranges  int `yaml:"ranges" validate:"gte=1,lte=256"`
	Workers int `yaml:"workers" validate:"gte=0"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// MetricsConfig enables the Prometheus endpoint.
type MetricsConfig struct {
	// Addr, if set, serves /metrics on that host:port during the run.
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// CheckpointConfig persists progress for resumable runs.
type CheckpointConfig struct {
	Path  string `yaml:"path" validate:"required_with=Every"`
	Every int    `yaml:"every" validate:"gte=0"`

	// Resume starts from the checkpoint at Path when it exists.
	Resume bool `yaml:"resume"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Structure: "binarytree",
		Size:      3,
		Search:    SearchConfig{Ranges: 1},
		Log:       LogConfig{Level: "info"},
	}
}

var validate = validator.New()

// Validate checks struct tags and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Search.Ranges > 1 {
		if c.Search.Start != nil || c.Search.End != nil {
			return fmt.Errorf("%w: search.ranges > 1 excludes search.start and search.end", ErrInvalid)
		}
		if c.Checkpoint.Path != "" {
			return fmt.Errorf("%w: search.ranges > 1 excludes checkpoints", ErrInvalid)
		}
	}
	if c.Checkpoint.Resume && c.Search.Start != nil {
		return fmt.Errorf("%w: checkpoint.resume excludes search.start", ErrInvalid)
	}

	return nil
}

// Load reads path over Default, applies environment overrides and validates
// the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg from LVBOUND_STRUCTURE, LVBOUND_SIZE,
// LVBOUND_MAX_CANDIDATES, LVBOUND_RANGES, LVBOUND_WORKERS, LVBOUND_LOG_LEVEL,
// LVBOUND_LOG_JSON, LVBOUND_METRICS_ADDR, LVBOUND_CHECKPOINT_PATH and
// LVBOUND_CHECKPOINT_EVERY.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("LVBOUND_STRUCTURE"); v != "" {
		cfg.Structure = v
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"LVBOUND_SIZE", &cfg.Size},
		{"LVBOUND_MAX_CANDIDATES", &cfg.Search.MaxCandidates},
		{"LVBOUND_RANGES", &cfg.Search.Ranges},
		{"LVBOUND_WORKERS", &cfg.Search.Workers},
		{"LVBOUND_CHECKPOINT_EVERY", &cfg.Checkpoint.Every},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, e.name, v)
		}
		*e.dst = i
	}
	if v := os.Getenv("LVBOUND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LVBOUND_LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: LVBOUND_LOG_JSON=%q", ErrInvalidEnv, v)
		}
		cfg.Log.JSON = b
	}
	if v := os.Getenv("LVBOUND_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("LVBOUND_CHECKPOINT_PATH"); v != "" {
		cfg.Checkpoint.Path = v
	}

	return nil
}
