// SPDX-License-Identifier: MIT

package orbital

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/orbitals/mcmc"
	"github.com/katalvlaran/orbitals/projection"
	"github.com/katalvlaran/orbitals/wavefunc"
)

// Result is what CalculatePointCloud hands to a renderer.
type Result struct {
	// Positions is x0,y0,z0,x1,y1,z1,... with length 3·N.
	Positions []float64
	// Values holds one display scalar per point in the current mode.
	Values []float64
	// BoxSize is the scene extent 20·n·a₀.
	BoxSize float64
	// AcceptanceRate is the chain's overall acceptance fraction.
	AcceptanceRate float64
}

// Calculator owns the orbital state, one evaluator cache, the random source
// and the last generated cloud.
type Calculator struct {
	state   State
	mode    projection.Mode
	eval    *wavefunc.Evaluator
	rng     *rand.Rand
	logger  *zap.Logger
	boxSize float64
	cloud   *mcmc.PointCloud
}

// New returns a Calculator on DefaultState in projection.DefaultMode.
// The box size starts at mcmc.DefaultSeedBox until the first cloud exists.
func New(opts ...Option) *Calculator {
	cfg := newCalcConfig(opts...)
	return &Calculator{
		state:   cfg.state,
		mode:    cfg.mode,
		eval:    wavefunc.New(cfg.cacheOptions...),
		rng:     cfg.rng,
		logger:  cfg.logger,
		boxSize: mcmc.DefaultSeedBox,
	}
}

// SetOrbital clamps (n,l,m) into a valid state and stores it.
// It reports whether the stored state changed. The cloud is not regenerated.
func (c *Calculator) SetOrbital(n, l, m int) bool {
	next := Clamp(n, l, m)
	if next == c.state {
		return false
	}
	c.logger.Debug("orbital changed",
		zap.Stringer("from", c.state),
		zap.Stringer("to", next),
	)
	c.state = next
	return true
}

// SetVisualizationMode switches the projection mode by name.
// Unknown names leave the mode untouched and return false.
func (c *Calculator) SetVisualizationMode(name string) bool {
	mode, ok := projection.ParseMode(name)
	if !ok {
		c.logger.Debug("unknown visualization mode", zap.String("mode", name))
		return false
	}
	c.mode = mode
	return true
}

// CalculatePointCloud replaces the current cloud with numPoints fresh samples
// of the current orbital and projects them in the current mode.
//
// The chain is seeded in a cube the size of the previous box; afterwards the
// box becomes 20·n·a₀.
//
// Errors:
//   - ErrInvalidSampleCount if numPoints < 1. The previous cloud is kept.
func (c *Calculator) CalculatePointCloud(numPoints int) (Result, error) {
	target := c.eval.Bind(c.state.N, c.state.L, c.state.M)
	sampler, err := mcmc.New(target,
		mcmc.WithRand(c.rng),
		mcmc.WithSeedBox(c.boxSize),
		mcmc.WithLogger(c.logger),
	)
	if err != nil {
		return Result{}, fmt.Errorf("orbital: %w", err)
	}
	cloud, err := sampler.Run(numPoints)
	if err != nil {
		return Result{}, fmt.Errorf("orbital: %w", err)
	}

	c.cloud = cloud
	c.boxSize = cloud.BoxSize

	factorials, harmonics := c.eval.Cache().Len()
	c.logger.Info("point cloud generated",
		zap.Stringer("orbital", c.state),
		zap.Stringer("mode", c.mode),
		zap.Int("points", cloud.Len()),
		zap.Float64("acceptance_rate", cloud.AcceptanceRate),
		zap.Float64("box_size", cloud.BoxSize),
		zap.Int("cached_factorials", factorials),
		zap.Int("cached_harmonics", harmonics),
	)

	return Result{
		Positions:      cloud.Positions(),
		Values:         projection.Project(c.mode, cloud.Samples),
		BoxSize:        cloud.BoxSize,
		AcceptanceRate: cloud.AcceptanceRate,
	}, nil
}

// Values re-projects the current cloud in the current mode without
// resampling. It returns nil before the first cloud.
func (c *Calculator) Values() []float64 {
	if c.cloud == nil {
		return nil
	}
	return projection.Project(c.mode, c.cloud.Samples)
}

// PhaseValues returns the hue channel (phase mapped to [0,1)) when the mode
// is projection.Complex and a cloud exists, nil otherwise.
func (c *Calculator) PhaseValues() []float64 {
	if c.mode != projection.Complex || c.cloud == nil {
		return nil
	}
	return projection.PhaseChannel(c.cloud.Samples)
}

// State returns the current quantum numbers.
func (c *Calculator) State() State { return c.state }

// Mode returns the current visualization mode.
func (c *Calculator) Mode() projection.Mode { return c.mode }

// BoxSize returns the scene extent of the last cloud, or mcmc.DefaultSeedBox.
func (c *Calculator) BoxSize() float64 { return c.boxSize }

// AcceptanceRate returns the last run's acceptance fraction, 0 before any run.
func (c *Calculator) AcceptanceRate() float64 {
	if c.cloud == nil {
		return 0
	}
	return c.cloud.AcceptanceRate
}

// Cloud returns the last generated cloud, or nil.
func (c *Calculator) Cloud() *mcmc.PointCloud { return c.cloud }
