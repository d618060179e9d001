// SPDX-License-Identifier: MIT
//
// Package config loads the degseq CLI configuration.
//
// Sources, lowest precedence first: built-in defaults, a YAML file, and
// DEGSEQ_-prefixed environment variables (DEGSEQ_GENERATE_SEED maps to
// generate.seed). Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/degseq/degseq"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Generate GenerateConfig `koanf:"generate"`
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// GenerateConfig holds sampling parameters.
type GenerateConfig struct {
	Method         string        `koanf:"method"`
	Seed           int64         `koanf:"seed"`
	Samples        int           `koanf:"samples"`
	Workers        int           `koanf:"workers"`
	Timeout        time.Duration `koanf:"timeout"` // 0: none
	CheckInterval  int           `koanf:"check_interval"`
	MaxAttempts    int           `koanf:"max_attempts"` // 0: unbounded
	DenseThreshold int           `koanf:"dense_threshold"`
	RewireFactor   int           `koanf:"rewire_factor"`
	Format         string        `koanf:"format"` // yaml, edgelist
}

// LogConfig selects the log sink.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig controls the Prometheus textfile written after a run.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Textfile  string `koanf:"textfile"`
}

// Method resolves Generate.Method.
func (c *Config) Method() (degseq.Method, error) {
	return degseq.ParseMethod(c.Generate.Method)
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Method(); err != nil {
		errs = append(errs, err)
	}
	g := c.Generate
	if g.Samples < 1 {
		errs = append(errs, fmt.Errorf("generate.samples must be >= 1, got %d", g.Samples))
	}
	if g.Workers < 1 {
		errs = append(errs, fmt.Errorf("generate.workers must be >= 1, got %d", g.Workers))
	}
	if g.Timeout < 0 {
		errs = append(errs, fmt.Errorf("generate.timeout must be >= 0, got %s", g.Timeout))
	}
	if g.CheckInterval < 1 {
		errs = append(errs, fmt.Errorf("generate.check_interval must be >= 1, got %d", g.CheckInterval))
	}
	if g.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("generate.max_attempts must be >= 0, got %d", g.MaxAttempts))
	}
	if g.DenseThreshold < 0 {
		errs = append(errs, fmt.Errorf("generate.dense_threshold must be >= 0, got %d", g.DenseThreshold))
	}
	if g.RewireFactor < 0 {
		errs = append(errs, fmt.Errorf("generate.rewire_factor must be >= 0, got %d", g.RewireFactor))
	}
	switch g.Format {
	case "yaml", "edgelist":
	default:
		errs = append(errs, fmt.Errorf("generate.format must be yaml or edgelist, got %q", g.Format))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	switch c.Log.Output {
	case "stdout", "stderr":
	case "file":
		if c.Log.FilePath == "" {
			errs = append(errs, errors.New("log.file_path is required when log.output is file"))
		}
	default:
		errs = append(errs, fmt.Errorf("log.output must be stdout, stderr or file, got %q", c.Log.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
