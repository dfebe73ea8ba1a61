// Package config provides ambient engine configuration: everything that
// tunes how the core runs (worker counts, RNG seed, telemetry output,
// contest time budgets) rather than what the GA itself is searching for.
// The GA's own tunables live in ga_params.ini, read by package paramsio
// — this file is the engine's own dial set, loaded once at process start
// the way the teacher's simulation config is.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds engine-level configuration.
type Config struct {
	Workers   WorkersConfig   `yaml:"workers"`
	RNG       RNGConfig       `yaml:"rng"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Contest   ContestConfig   `yaml:"contest"`
}

// WorkersConfig controls the simulation worker pool.
type WorkersConfig struct {
	// Count is the number of worker goroutines. 0 means runtime.NumCPU().
	Count int `yaml:"count"`
}

// RNGConfig controls the lock-free ring-buffer random source.
type RNGConfig struct {
	// Seed is the deterministic seed. 0 means draw from entropy.
	Seed int64 `yaml:"seed"`
}

// TelemetryConfig controls per-generation CSV output.
type TelemetryConfig struct {
	// Dir is the output directory for generation records. Empty disables
	// telemetry output entirely.
	Dir string `yaml:"dir"`
}

// ContestConfig controls the online contest loop's time budgets.
type ContestConfig struct {
	InitialBudgetMillis int `yaml:"initial_budget_millis"`
	TurnBudgetMillis    int `yaml:"turn_budget_millis"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging over embedded
// defaults. An empty path uses only the embedded defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	return cfg, nil
}

// WriteYAML serializes cfg to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
