// Package config loads engine-wide tuning parameters for the navmesh
// package from a YAML file, using YAML struct tags over a struct that
// is pre-filled with defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig holds tunables for a navmesh.NavigationContext that
// operators may want to adjust without recompiling.
type EngineConfig struct {
	// Tolerance is informational: callers comparing their own scene
	// coordinates against navmesh.TOL (a fixed package constant) can
	// load the value operators expect here rather than hardcoding it
	// twice. It does not change navmesh.TOL itself.
	Tolerance float32 `yaml:"tolerance"`

	// DefaultAgentRadius is used by callers that don't pass an explicit
	// SearchInfo.AgentRadius.
	DefaultAgentRadius float32 `yaml:"default_agent_radius"`

	// Shuffle enables NewShuffled-style deterministic face shuffling
	// during tree construction to reduce expected tree depth.
	Shuffle bool `yaml:"shuffle"`

	// ShuffleSeed seeds the shuffle RNG. Ignored if Shuffle is false.
	ShuffleSeed uint64 `yaml:"shuffle_seed"`

	// MaxIterations caps the number of A* pops per query. Zero means
	// unbounded (the engine default).
	MaxIterations int `yaml:"max_iterations"`

	// LogLevel holds a slog level name (debug, info, warn, error).
	// The navmesh package does not read it: the engine logs through
	// slog's default logger.
	LogLevel string `yaml:"log_level"`
}

// DefaultEngineConfig returns an EngineConfig with sensible defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Tolerance:          0.1,
		DefaultAgentRadius: 0,
		Shuffle:            false,
		ShuffleSeed:        0,
		MaxIterations:      0,
		LogLevel:           "info",
	}
}

// LoadEngineConfig loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
