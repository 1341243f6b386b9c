// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bch/freelie"
	"github.com/katalvlaran/bch/goldberg"
)

// Config is the YAML configuration of the goldberg command.
//
//	order: 12
//	words: [AB, AABB, BABA]
//	dump: false
//	log_level: info
//	metrics:
//	  enabled: true
//	  namespace: bch
type Config struct {
	Order    int           `yaml:"order"`
	Words    []string      `yaml:"words"`
	Dump     bool          `yaml:"dump"`
	LogLevel string        `yaml:"log_level"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// MetricsConfig controls the Prometheus collector attached to the build.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

const (
	defaultOrder     = 8
	defaultLogLevel  = "info"
	defaultNamespace = "bch"
)

// LoadConfig loads configuration from a YAML file.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if file cannot be read, parsed or validated
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	var cfg Config
	applyDefaults(&cfg)

	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Order == 0 {
		cfg.Order = defaultOrder
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaultNamespace
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Order < 1 || cfg.Order > goldberg.MaxOrder {
		return fmt.Errorf("order %d not in [1,%d]", cfg.Order, goldberg.MaxOrder)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	var errs []error
	for _, s := range cfg.Words {
		w, err := freelie.ParseWord(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("word %q: %w", s, err))
			continue
		}
		if len(w) > cfg.Order {
			errs = append(errs, fmt.Errorf("word %q longer than order %d", s, cfg.Order))
		}
	}

	return errors.Join(errs...)
}
