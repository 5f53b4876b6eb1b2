// SPDX-License-Identifier: MIT

package mcmc_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/orbitals/mcmc"
	"github.com/katalvlaran/orbitals/wavefunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// flatTarget has the same density everywhere.
type flatTarget struct{ density float64 }

func (f flatTarget) Density(r3.Vec) float64 { return f.density }
func (f flatTarget) Psi(r3.Vec) complex128  { return complex(math.Sqrt(f.density), 0) }
func (f flatTarget) Scale() float64         { return 1 }

// newOrbitalSampler builds a sampler over a fresh evaluator.
func newOrbitalSampler(t testing.TB, n, l, m int, opts ...mcmc.Option) *mcmc.Sampler {
	t.Helper()
	s, err := mcmc.New(wavefunc.New().Bind(n, l, m), opts...)
	require.NoError(t, err)
	return s
}

// TestRun_ExactLength checks the output length for small, medium and large N.
func TestRun_ExactLength(t *testing.T) {
	for _, n := range []int{1, 1000, 100000} {
		if n == 100000 && testing.Short() {
			continue
		}
		cloud, err := newOrbitalSampler(t, 2, 1, 0, mcmc.WithSeed(7)).Run(n)
		require.NoError(t, err)
		assert.Equal(t, n, cloud.Len())
		assert.Len(t, cloud.Positions(), 3*n)
		assert.Equal(t, n+min(mcmc.DefaultBurnInCap, n/mcmc.BurnInDivisor), cloud.Stats.Total)
	}
}

// TestRun_InvalidCount verifies the sample-count guard.
func TestRun_InvalidCount(t *testing.T) {
	s := newOrbitalSampler(t, 1, 0, 0)
	for _, n := range []int{0, -3} {
		_, err := s.Run(n)
		assert.ErrorIs(t, err, mcmc.ErrInvalidSampleCount)
	}
}

// TestNew_NilTarget verifies the constructor guard.
func TestNew_NilTarget(t *testing.T) {
	_, err := mcmc.New(nil)
	assert.ErrorIs(t, err, mcmc.ErrNilTarget)
}

// TestRun_AcceptanceRateBounds runs several orbitals and checks the rate range.
func TestRun_AcceptanceRateBounds(t *testing.T) {
	for _, q := range [][3]int{{1, 0, 0}, {2, 1, 1}, {3, 2, -2}, {4, 3, 0}, {6, 5, 5}} {
		cloud, err := newOrbitalSampler(t, q[0], q[1], q[2], mcmc.WithSeed(11)).Run(5000)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cloud.AcceptanceRate, 0.0, "%v", q)
		assert.LessOrEqual(t, cloud.AcceptanceRate, 1.0, "%v", q)
		assert.Equal(t, float64(cloud.Stats.Accepted)/float64(cloud.Stats.Total), cloud.AcceptanceRate)
		assert.Equal(t, 20*float64(q[0]), cloud.BoxSize, "box size is 20·n")
	}
}

// TestRun_Deterministic verifies bit-identical clouds for the same seed.
func TestRun_Deterministic(t *testing.T) {
	a, err := newOrbitalSampler(t, 3, 2, 1, mcmc.WithSeed(2024)).Run(4000)
	require.NoError(t, err)
	b, err := newOrbitalSampler(t, 3, 2, 1, mcmc.WithSeed(2024)).Run(4000)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different clouds (-first +second):\n%s", diff)
	}

	c, err := newOrbitalSampler(t, 3, 2, 1, mcmc.WithRand(rand.New(rand.NewSource(2025)))).Run(4000)
	require.NoError(t, err)
	assert.NotEqual(t, a.Samples, c.Samples, "different seeds should diverge")
}

// TestRun_RejectionsRepeatPositions checks that emitted positions only change
// on accepted moves and that repeats are kept.
func TestRun_RejectionsRepeatPositions(t *testing.T) {
	cloud, err := newOrbitalSampler(t, 2, 1, -1, mcmc.WithSeed(3)).Run(20000)
	require.NoError(t, err)

	moves, repeats := 0, 0
	for i := 1; i < cloud.Len(); i++ {
		if cloud.Samples[i].Position == cloud.Samples[i-1].Position {
			repeats++
			continue
		}
		moves++
	}
	assert.Positive(t, repeats, "a tuned chain rejects some proposals")
	assert.LessOrEqual(t, moves, cloud.Stats.Accepted)
}

// TestRun_FreshAmplitude verifies that every sample carries ψ at its own position.
func TestRun_FreshAmplitude(t *testing.T) {
	target := wavefunc.New().Bind(3, 1, 1)
	s, err := mcmc.New(target, mcmc.WithSeed(5))
	require.NoError(t, err)
	cloud, err := s.Run(500)
	require.NoError(t, err)

	check := wavefunc.New().Bind(3, 1, 1)
	for i, smp := range cloud.Samples {
		assert.Equal(t, check.Psi(smp.Position), smp.Psi, "sample %d", i)
	}
}

// TestRun_FlatTargetTuning exercises the warmup schedule on a target that
// accepts everything: the step grows by 1.1 at each of the 10 tuning points.
func TestRun_FlatTargetTuning(t *testing.T) {
	s, err := mcmc.New(flatTarget{density: 1}, mcmc.WithSeed(1))
	require.NoError(t, err)
	cloud, err := s.Run(50000)
	require.NoError(t, err)

	want := 1.0 / mcmc.InitialStepDivisor
	for k := 0; k < mcmc.DefaultBurnInCap/mcmc.DefaultTuneEvery; k++ {
		want *= 1.1
	}
	assert.Equal(t, 5000, cloud.Stats.WarmUp)
	assert.InDelta(t, want, cloud.Stats.StepSize, 1e-12)
	assert.Equal(t, 1.0, cloud.AcceptanceRate)
}

// TestRun_ShortWarmupNeverTunes: with N=1000 the warmup is 100 iterations,
// none of which is a multiple of 500.
func TestRun_ShortWarmupNeverTunes(t *testing.T) {
	s, err := mcmc.New(flatTarget{density: 1}, mcmc.WithSeed(1))
	require.NoError(t, err)
	cloud, err := s.Run(1000)
	require.NoError(t, err)
	assert.Equal(t, 100, cloud.Stats.WarmUp)
	assert.Equal(t, 1.0/mcmc.InitialStepDivisor, cloud.Stats.StepSize)
}

// TestRun_ZeroDensityNeverMoves: from ρ=0 a chain only moves to ρ>0, so a
// target that is zero everywhere freezes the chain and shrinks the step.
func TestRun_ZeroDensityNeverMoves(t *testing.T) {
	s, err := mcmc.New(flatTarget{density: 0}, mcmc.WithSeed(9), mcmc.WithStepSize(2), mcmc.WithTuneEvery(100))
	require.NoError(t, err)
	cloud, err := s.Run(3000)
	require.NoError(t, err)

	first := cloud.Samples[0].Position
	for _, smp := range cloud.Samples {
		require.Equal(t, first, smp.Position)
		require.False(t, math.IsNaN(smp.Real()))
	}
	assert.Equal(t, 0.0, cloud.AcceptanceRate)
	assert.InDelta(t, 2*math.Pow(0.9, 3), cloud.Stats.StepSize, 1e-12, "tuned at i=-300,-200,-100")
}

// TestRun_GroundStateMeanRadius: for 1s, ⟨r⟩ = 1.5·a₀.
func TestRun_GroundStateMeanRadius(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	cloud, err := newOrbitalSampler(t, 1, 0, 0, mcmc.WithSeed(42), mcmc.WithSeedBox(4)).Run(100000)
	require.NoError(t, err)

	radii := make([]float64, cloud.Len())
	for i, smp := range cloud.Samples {
		radii[i] = r3.Norm(smp.Position)
	}
	assert.InDelta(t, 1.5, stat.Mean(radii, nil), 0.15)
}

// TestOptions_Panics checks option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { mcmc.WithRand(nil) })
	assert.Panics(t, func() { mcmc.WithSeedBox(0) })
	assert.Panics(t, func() { mcmc.WithStepSize(-1) })
	assert.Panics(t, func() { mcmc.WithBurnInCap(-1) })
	assert.Panics(t, func() { mcmc.WithTuneEvery(0) })
	assert.Panics(t, func() { mcmc.WithLogger(nil) })
}

// TestDeriveSeed verifies stream separation and determinism.
func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, mcmc.DeriveSeed(10, 3), mcmc.DeriveSeed(10, 3))
	seen := map[int64]bool{}
	for stream := uint64(0); stream < 64; stream++ {
		s := mcmc.DeriveSeed(10, stream)
		assert.False(t, seen[s], "stream %d collides", stream)
		seen[s] = true
	}
}

// TestSample_Accessors covers the derived scalar views of a sample.
func TestSample_Accessors(t *testing.T) {
	s := mcmc.Sample{Psi: complex(0, -2)}
	assert.Equal(t, 0.0, s.Real())
	assert.Equal(t, -2.0, s.Imag())
	assert.Equal(t, 2.0, s.Modulus())
	assert.Equal(t, 4.0, s.Density())
	assert.InDelta(t, -math.Pi/2, s.Phase(), 1e-15)
}
