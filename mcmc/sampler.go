// SPDX-License-Identifier: MIT

package mcmc

import (
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sampler runs Metropolis–Hastings chains against one Target.
type Sampler struct {
	target Target
	cfg    config
}

// New returns a Sampler for target configured by opts.
func New(target Target, opts ...Option) (*Sampler, error) {
	if target == nil {
		return nil, mcmcErrorf(opNew, ErrNilTarget)
	}
	return &Sampler{target: target, cfg: newConfig(opts...)}, nil
}

// Run draws exactly numSamples points from the target density.
//
// Algorithm:
//  1. x₀ ~ U(−box/2, box/2)³, step = Scale()/5, warmup W = min(cap, N/10).
//  2. For i = −W .. N−1:
//     a. x' = x + U(−step/2, step/2)³
//     b. accept x' if ρ(x') ≥ ρ(x); if ρ(x) = 0 accept iff ρ(x') > 0;
//     otherwise accept with probability ρ(x')/ρ(x)
//     c. i ≥ 0: emit (x, ψ(x)), with ψ evaluated afresh at the committed x
//     d. i < 0 and i ≡ 0 (mod tuneEvery): retune step from the running rate
//  3. BoxSize = 20·Scale().
//
// Repeated positions in the output are rejected proposals and are part of
// the chain's correct distribution.
//
// Errors:
//   - ErrInvalidSampleCount if numSamples < 1.
//
// Complexity: O(N + W) density evaluations, O(N) memory.
func (s *Sampler) Run(numSamples int) (*PointCloud, error) {
	if numSamples < 1 {
		return nil, mcmcErrorf(opRun, ErrInvalidSampleCount)
	}

	var (
		rng      = s.cfg.rng
		warmUp   = min(s.cfg.burnInCap, numSamples/BurnInDivisor)
		step     = s.initialStep()
		samples  = make([]Sample, numSamples)
		accepted int
		total    int
	)

	pos := r3.Vec{
		X: uniformCentered(rng, s.cfg.seedBox),
		Y: uniformCentered(rng, s.cfg.seedBox),
		Z: uniformCentered(rng, s.cfg.seedBox),
	}
	density := s.target.Density(pos)

	for i := -warmUp; i < numSamples; i++ {
		candidate := r3.Add(pos, r3.Vec{
			X: uniformCentered(rng, step),
			Y: uniformCentered(rng, step),
			Z: uniformCentered(rng, step),
		})
		candidateDensity := s.target.Density(candidate)

		if accept(rng, density, candidateDensity) {
			pos, density = candidate, candidateDensity
			accepted++
		}
		total++

		if i >= 0 {
			samples[i] = Sample{Position: pos, Psi: s.target.Psi(pos)}
			continue
		}
		if i%s.cfg.tuneEvery == 0 {
			step = tune(step, float64(accepted)/float64(total))
		}
	}

	cloud := &PointCloud{
		Samples:        samples,
		AcceptanceRate: float64(accepted) / float64(total),
		BoxSize:        SceneScale * s.target.Scale(),
		Stats: Stats{
			Accepted: accepted,
			Total:    total,
			WarmUp:   warmUp,
			StepSize: step,
		},
	}
	s.cfg.logger.Debug("mcmc run finished",
		zap.Int("samples", numSamples),
		zap.Int("warmup", warmUp),
		zap.Float64("acceptance_rate", cloud.AcceptanceRate),
		zap.Float64("step_size", step),
	)

	return cloud, nil
}

func (s *Sampler) initialStep() float64 {
	if s.cfg.stepSize > 0 {
		return s.cfg.stepSize
	}
	return s.target.Scale() / InitialStepDivisor
}

// accept applies the Metropolis rule for a symmetric proposal.
// The random draw happens only when the move is downhill from a non-zero density.
func accept(rng *rand.Rand, current, candidate float64) bool {
	if current == 0 {
		return candidate > 0
	}
	if candidate >= current {
		return true
	}
	return rng.Float64() < candidate/current
}

// tune nudges the step size toward the acceptance window.
func tune(step, rate float64) float64 {
	switch {
	case rate < lowAcceptance:
		return step * stepShrink
	case rate > highAcceptance:
		return step * stepGrow
	}
	return step
}
