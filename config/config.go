// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbitals/mcmc"
	"github.com/katalvlaran/orbitals/orbital"
	"github.com/katalvlaran/orbitals/projection"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all orbitals settings.
type Config struct {
	Orbital  OrbitalConfig  `yaml:"orbital"`
	Sampling SamplingConfig `yaml:"sampling"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OrbitalConfig selects the orbital and how it is displayed.
type OrbitalConfig struct {
	N    int    `yaml:"n"`
	L    int    `yaml:"l"`
	M    int    `yaml:"m"`
	Mode string `yaml:"mode"` // real, imaginary, modulus, density, phase, complex
}

// SamplingConfig sizes and seeds the chains.
type SamplingConfig struct {
	Points  int   `yaml:"points"`
	Seed    int64 `yaml:"seed"`    // 0 selects the sampler default
	Workers int   `yaml:"workers"` // batch concurrency; 0 means GOMAXPROCS
}

// LoggingConfig configures the zap logger built by the binary.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// DefaultConfig returns the settings a fresh calculator uses.
func DefaultConfig() *Config {
	return &Config{
		Orbital: OrbitalConfig{
			N:    orbital.DefaultState.N,
			L:    orbital.DefaultState.L,
			M:    orbital.DefaultState.M,
			Mode: projection.DefaultMode.String(),
		},
		Sampling: SamplingConfig{
			Points: orbital.MinInteractiveSamples,
			Seed:   mcmc.DefaultSeed,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file yields the defaults (still overridden by the environment).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies ORBITALS_* variables. Malformed numbers are ignored.
func (c *Config) applyEnvOverrides() {
	envInt("ORBITALS_N", &c.Orbital.N)
	envInt("ORBITALS_L", &c.Orbital.L)
	envInt("ORBITALS_M", &c.Orbital.M)
	if mode := os.Getenv("ORBITALS_MODE"); mode != "" {
		c.Orbital.Mode = mode
	}

	envInt("ORBITALS_POINTS", &c.Sampling.Points)
	envInt("ORBITALS_WORKERS", &c.Sampling.Workers)
	if v := os.Getenv("ORBITALS_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Sampling.Seed = seed
		}
	}

	if level := os.Getenv("ORBITALS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func envInt(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

// State returns the configured orbital, clamped into range.
func (c *Config) State() orbital.State {
	return orbital.Clamp(c.Orbital.N, c.Orbital.L, c.Orbital.M)
}

// Mode returns the configured projection mode, or the default if unknown.
func (c *Config) Mode() projection.Mode {
	mode, _ := projection.ParseMode(c.Orbital.Mode)
	return mode
}

// LogLevel parses Logging.Level, falling back to info.
func (c *Config) LogLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// Validate rejects settings the binary cannot run with. Out-of-range
// quantum numbers are not errors; they are clamped.
func (c *Config) Validate() error {
	if _, ok := projection.ParseMode(c.Orbital.Mode); !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Orbital.Mode)
	}
	if c.Sampling.Points < 1 {
		return fmt.Errorf("%w: points must be positive, got %d", ErrInvalidConfig, c.Sampling.Points)
	}
	if c.Sampling.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Sampling.Workers)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log encoding %q", ErrInvalidConfig, c.Logging.Encoding)
	}
	return nil
}
