// SPDX-License-Identifier: MIT

package orbital

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orbitals/mcmc"
	"github.com/katalvlaran/orbitals/projection"
)

// Request asks for one cloud. Quantum numbers are clamped like SetOrbital.
type Request struct {
	N, L, M int
	Samples int
}

// BatchResult pairs a request with the clamped state it ran on.
type BatchResult struct {
	Request Request
	State   State
	Result  Result
}

// BatchOption customizes GenerateBatch.
type BatchOption func(*batchConfig)

type batchConfig struct {
	workers int
	seed    int64
	mode    projection.Mode
	logger  *zap.Logger
}

// WithWorkers bounds the number of concurrent chains. Panics if n < 1.
func WithWorkers(n int) BatchOption {
	if n < 1 {
		panic("orbital: WithWorkers(n<1)")
	}
	return func(c *batchConfig) {
		c.workers = n
	}
}

// WithBatchSeed sets the parent seed; request i runs on mcmc.DeriveSeed(seed, i).
func WithBatchSeed(seed int64) BatchOption {
	return func(c *batchConfig) {
		c.seed = seed
	}
}

// WithBatchMode sets the projection mode for every request.
func WithBatchMode(mode projection.Mode) BatchOption {
	if mode.String() == "" {
		panic("orbital: WithBatchMode(unknown mode)")
	}
	return func(c *batchConfig) {
		c.mode = mode
	}
}

// WithBatchLogger attaches a logger shared by all workers. Panics on nil.
func WithBatchLogger(l *zap.Logger) BatchOption {
	if l == nil {
		panic("orbital: WithBatchLogger(nil)")
	}
	return func(c *batchConfig) {
		c.logger = l
	}
}

// GenerateBatch samples every request concurrently, each on its own
// Calculator and random stream, and returns results in request order.
// The output is identical for any worker count.
//
// The first failing request cancels the rest; its error is returned with
// the request index.
//
// Errors:
//   - ErrEmptyBatch if reqs is empty.
//   - ErrInvalidSampleCount (wrapped) if a request asks for fewer than one point.
//   - ctx.Err() if ctx is cancelled before all requests start.
func GenerateBatch(ctx context.Context, reqs []Request, opts ...BatchOption) ([]BatchResult, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}
	cfg := batchConfig{
		workers: runtime.GOMAXPROCS(0),
		seed:    mcmc.DefaultSeed,
		mode:    projection.DefaultMode,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]BatchResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			calc := New(
				WithState(req.N, req.L, req.M),
				WithMode(cfg.mode),
				WithSeed(mcmc.DeriveSeed(cfg.seed, uint64(i))),
				WithLogger(cfg.logger.With(zap.Int("request", i))),
			)
			res, err := calc.CalculatePointCloud(req.Samples)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = BatchResult{Request: req, State: calc.State(), Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.logger.Info("batch finished",
		zap.Int("requests", len(reqs)),
		zap.Int("workers", cfg.workers),
	)
	return results, nil
}
