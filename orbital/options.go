// SPDX-License-Identifier: MIT

package orbital

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/orbitals/mcmc"
	"github.com/katalvlaran/orbitals/projection"
	"github.com/katalvlaran/orbitals/special"
)

// Option customizes a Calculator. Options panic on nonsensical values.
type Option func(*calcConfig)

type calcConfig struct {
	rng          *rand.Rand
	logger       *zap.Logger
	state        State
	mode         projection.Mode
	cacheOptions []special.CacheOption
}

func newCalcConfig(opts ...Option) calcConfig {
	cfg := calcConfig{
		logger: zap.NewNop(),
		state:  DefaultState,
		mode:   projection.DefaultMode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = newRand(0)
	}
	return cfg
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = mcmc.DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// WithSeed makes every cloud reproducible; 0 selects mcmc.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *calcConfig) {
		c.rng = newRand(seed)
	}
}

// WithRand injects the random source shared by all runs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("orbital: WithRand(nil)")
	}
	return func(c *calcConfig) {
		c.rng = r
	}
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("orbital: WithLogger(nil)")
	}
	return func(c *calcConfig) {
		c.logger = l
	}
}

// WithState sets the starting orbital, clamped like SetOrbital.
func WithState(n, l, m int) Option {
	return func(c *calcConfig) {
		c.state = Clamp(n, l, m)
	}
}

// WithMode sets the starting visualization mode. Panics on an unknown mode.
func WithMode(mode projection.Mode) Option {
	if _, ok := projection.ParseMode(mode.String()); !ok {
		panic("orbital: WithMode(unknown mode)")
	}
	return func(c *calcConfig) {
		c.mode = mode
	}
}

// WithHarmonicLimit caps the evaluator's spherical harmonic memo.
// See special.WithHarmonicLimit.
func WithHarmonicLimit(n int) Option {
	opt := special.WithHarmonicLimit(n)
	return func(c *calcConfig) {
		c.cacheOptions = append(c.cacheOptions, opt)
	}
}
