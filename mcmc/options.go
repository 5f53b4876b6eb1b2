// SPDX-License-Identifier: MIT

package mcmc

import (
	"math/rand"

	"go.uber.org/zap"
)

// Defaults reproduce the tuning the point-cloud renderer was built around.
const (
	// DefaultSeedBox is the edge of the cube the first position is drawn from.
	DefaultSeedBox = 40.0

	// DefaultBurnInCap bounds the warmup length; warmup is min(cap, N/BurnInDivisor).
	DefaultBurnInCap = 5000

	// BurnInDivisor sets warmup to a tenth of the requested samples.
	BurnInDivisor = 10

	// DefaultTuneEvery is the warmup tuning period in iterations.
	DefaultTuneEvery = 500

	// InitialStepDivisor sets the first step size to n·a₀/5.
	InitialStepDivisor = 5

	// SceneScale relates the reported box size to the orbital scale: box = 20·n·a₀.
	SceneScale = 20

	// Acceptance window and step multipliers applied while tuning.
	lowAcceptance  = 0.3
	highAcceptance = 0.5
	stepShrink     = 0.9
	stepGrow       = 1.1
)

// Option customizes a Sampler.
// Constructors panic on nonsensical values (programmer error); Run never panics.
type Option func(*config)

// config is the resolved sampler configuration.
type config struct {
	rng       *rand.Rand
	seedBox   float64 // > 0
	stepSize  float64 // 0 ⇒ target.Scale()/InitialStepDivisor
	burnInCap int     // ≥ 0
	tuneEvery int     // > 0
	logger    *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		seedBox:   DefaultSeedBox,
		burnInCap: DefaultBurnInCap,
		tuneEvery: DefaultTuneEvery,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithRand injects the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mcmc: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic random source; 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithSeedBox sets the edge of the cube the chain starts in. Panics if box ≤ 0.
func WithSeedBox(box float64) Option {
	if !(box > 0) {
		panic("mcmc: WithSeedBox(box<=0)")
	}
	return func(c *config) {
		c.seedBox = box
	}
}

// WithStepSize overrides the initial proposal width. Panics if step ≤ 0.
func WithStepSize(step float64) Option {
	if !(step > 0) {
		panic("mcmc: WithStepSize(step<=0)")
	}
	return func(c *config) {
		c.stepSize = step
	}
}

// WithBurnInCap bounds the warmup length. Panics if n < 0.
func WithBurnInCap(n int) Option {
	if n < 0 {
		panic("mcmc: WithBurnInCap(n<0)")
	}
	return func(c *config) {
		c.burnInCap = n
	}
}

// WithTuneEvery sets the warmup tuning period. Panics if n ≤ 0.
func WithTuneEvery(n int) Option {
	if n <= 0 {
		panic("mcmc: WithTuneEvery(n<=0)")
	}
	return func(c *config) {
		c.tuneEvery = n
	}
}

// WithLogger attaches a logger for run summaries. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mcmc: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
