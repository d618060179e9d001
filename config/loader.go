// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "DEGSEQ_"
	// ConfigEnvVar names an explicit configuration file.
	ConfigEnvVar = "DEGSEQ_CONFIG"
)

// Loader merges defaults, a YAML file and the environment.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	explicit    string
	envPrefix   string
	overrides   map[string]any
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the optional search paths. The first existing
// file is loaded; none existing is not an error.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithFile loads path, which must exist. It takes precedence over
// DEGSEQ_CONFIG and the search paths.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.explicit = path }
}

// WithEnvPrefix replaces the environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// WithOverrides applies dotted-key values above every other source.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) { l.overrides = values }
}

// NewLoader returns a Loader with the default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"degseq.yaml", "config/degseq.yaml"},
		envPrefix:   EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load resolves, unmarshals and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}
	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("config: load overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults returns the built-in configuration as dotted keys.
func Defaults() map[string]any {
	return map[string]any{
		"generate.method":          "configuration_simple",
		"generate.seed":            1,
		"generate.samples":         1,
		"generate.workers":         1,
		"generate.timeout":         time.Duration(0),
		"generate.check_interval":  256,
		"generate.max_attempts":    0,
		"generate.dense_threshold": 1024,
		"generate.rewire_factor":   10,
		"generate.format":          "yaml",

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"metrics.enabled":   false,
		"metrics.namespace": "degseq",
		"metrics.textfile":  "degseq.prom",
	}
}

func (l *Loader) loadFile() error {
	path := l.explicit
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
		return nil
	}

	for _, p := range l.configPaths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: stat %s: %w", p, err)
		}
		if err := l.k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
		return nil
	}

	return nil
}

// loadEnv maps PREFIX_SECTION_KEY to section.key; only the first
// underscore after the prefix separates the section.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, interface{}) {
		if envKey == ConfigEnvVar {
			return "", nil
		}
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		return strings.Replace(key, "_", ".", 1), value
	}), nil)
}
