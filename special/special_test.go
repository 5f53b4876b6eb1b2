// SPDX-License-Identifier: MIT

package special_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/orbitals/special"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsLegendre = 1e-9

// legendreRef holds closed-form P(l,m,x) for l ≤ 3, Condon–Shortley sign included.
var legendreRef = map[[2]int]func(x float64) float64{
	{0, 0}: func(x float64) float64 { return 1 },
	{1, 0}: func(x float64) float64 { return x },
	{1, 1}: func(x float64) float64 { return -math.Sqrt(1 - x*x) },
	{2, 0}: func(x float64) float64 { return (3*x*x - 1) / 2 },
	{2, 1}: func(x float64) float64 { return -3 * x * math.Sqrt(1-x*x) },
	{2, 2}: func(x float64) float64 { return 3 * (1 - x*x) },
	{3, 0}: func(x float64) float64 { return (5*x*x*x - 3*x) / 2 },
	{3, 1}: func(x float64) float64 { return -1.5 * (5*x*x - 1) * math.Sqrt(1-x*x) },
	{3, 2}: func(x float64) float64 { return 15 * x * (1 - x*x) },
	{3, 3}: func(x float64) float64 { return -15 * math.Pow(1-x*x, 1.5) },
}

// TestAssociatedLegendre_ClosedForms compares every (l,m) with l ≤ 3 against
// its closed form over a spread of polar angles, for both signs of m.
func TestAssociatedLegendre_ClosedForms(t *testing.T) {
	for lm, ref := range legendreRef {
		for k := 0; k <= 24; k++ {
			theta := math.Pi * float64(k) / 24
			x := math.Cos(theta)
			want := ref(x)
			assert.InDelta(t, want, special.AssociatedLegendre(lm[0], lm[1], x), epsLegendre,
				"P(%d,%d,cos %.4f)", lm[0], lm[1], theta)
			assert.InDelta(t, want, special.AssociatedLegendre(lm[0], -lm[1], x), epsLegendre,
				"P(%d,%d,cos %.4f) must use |m|", lm[0], -lm[1], theta)
		}
	}
}

// TestAssociatedLegendre_BelowOrder verifies the l < |m| guard.
func TestAssociatedLegendre_BelowOrder(t *testing.T) {
	assert.Equal(t, 0.0, special.AssociatedLegendre(1, 2, 0.3))
	assert.Equal(t, 0.0, special.AssociatedLegendre(2, -3, -0.7))
}

// TestAssociatedLegendre_HighDegreeFinite sweeps the largest degrees an n ≤ 20
// orbital can request and checks nothing overflows.
func TestAssociatedLegendre_HighDegreeFinite(t *testing.T) {
	for l := 0; l <= 19; l++ {
		for m := -l; m <= l; m++ {
			for _, x := range []float64{-1, -0.5, 0, 0.25, 0.999, 1} {
				v := special.AssociatedLegendre(l, m, x)
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "P(%d,%d,%g)=%g", l, m, x, v)
			}
		}
	}
}

// TestFactorial_ExactAndMemoized checks 0!..15! and that repeated calls hit the memo.
func TestFactorial_ExactAndMemoized(t *testing.T) {
	c := special.NewCache()
	want := uint64(1)
	for k := 0; k <= 15; k++ {
		if k > 1 {
			want *= uint64(k)
		}
		first := c.Factorial(k)
		assert.Equal(t, float64(want), first, "%d!", k)
		assert.Equal(t, first, c.Factorial(k), "%d! repeated", k)
	}
	facts, _ := c.Len()
	assert.Equal(t, 14, facts, "only k ≥ 2 is stored")
	assert.Equal(t, 1.0, c.Factorial(-3))
}

// TestDoubleFactorial covers odd, even and degenerate arguments.
func TestDoubleFactorial(t *testing.T) {
	cases := map[int]float64{-1: 1, 0: 1, 1: 1, 2: 2, 5: 15, 6: 48, 7: 105, 9: 945}
	for k, want := range cases {
		assert.Equal(t, want, special.DoubleFactorial(k), "%d!!", k)
	}
}

// TestLaguerre_ClosedForms compares against L₁ and L₂ in closed form.
func TestLaguerre_ClosedForms(t *testing.T) {
	for _, alpha := range []float64{0, 1, 3, 5} {
		for _, x := range []float64{0, 0.5, 2, 7.5} {
			assert.Equal(t, 1.0, special.Laguerre(0, alpha, x))
			assert.InDelta(t, 1+alpha-x, special.Laguerre(1, alpha, x), 1e-12)
			l2 := (x*x - 2*(alpha+2)*x + (alpha+1)*(alpha+2)) / 2
			assert.InDelta(t, l2, special.Laguerre(2, alpha, x), 1e-12)
		}
	}
}

// TestSphericalHarmonic_Isotropic checks Y(0,0) = √(1/4π) everywhere.
func TestSphericalHarmonic_Isotropic(t *testing.T) {
	c := special.NewCache()
	want := math.Sqrt(1 / (4 * math.Pi))
	for i := 0; i < 12; i++ {
		theta := math.Pi * float64(i) / 11
		phi := -math.Pi + 2*math.Pi*float64(i)/11
		y := c.SphericalHarmonic(0, 0, theta, phi)
		assert.InDelta(t, want, real(y), 1e-15)
		assert.Equal(t, 0.0, imag(y))
	}
}

// TestSphericalHarmonic_OddNegativeSign verifies Y(l,−m) = −conj(Y(l,m)) for odd m,
// and Y(l,−m) = conj(Y(l,m)) for even m.
func TestSphericalHarmonic_OddNegativeSign(t *testing.T) {
	c := special.NewCache()
	theta, phi := 1.1, 0.7
	for l := 1; l <= 4; l++ {
		for m := 1; m <= l; m++ {
			pos := c.SphericalHarmonic(l, m, theta, phi)
			neg := c.SphericalHarmonic(l, -m, theta, phi)
			want := cmplx.Conj(pos)
			if m%2 != 0 {
				want = -want
			}
			assert.InDelta(t, real(want), real(neg), 1e-14, "re Y(%d,%d)", l, -m)
			assert.InDelta(t, imag(want), imag(neg), 1e-14, "im Y(%d,%d)", l, -m)
		}
	}
}

// TestSphericalHarmonic_Memo checks that rounded angles share one entry and
// that the limit option stops growth without changing results.
func TestSphericalHarmonic_Memo(t *testing.T) {
	c := special.NewCache()
	a := c.SphericalHarmonic(2, 1, 0.5, 0.25)
	b := c.SphericalHarmonic(2, 1, 0.5+1e-8, 0.25-1e-8)
	assert.Equal(t, a, b, "angles within rounding share a memo entry")
	_, harmonics := c.Len()
	assert.Equal(t, 1, harmonics)

	limited := special.NewCache(special.WithHarmonicLimit(2))
	for i := 0; i < 5; i++ {
		theta := 0.1 * float64(i+1)
		assert.Equal(t, c.SphericalHarmonic(3, -2, theta, 1), limited.SphericalHarmonic(3, -2, theta, 1))
	}
	_, harmonics = limited.Len()
	assert.Equal(t, 2, harmonics)

	assert.Panics(t, func() { special.WithHarmonicLimit(-1) })
}

// TestRadial_GroundState uses R(1,0,r) = e^(−r) under this normalization.
func TestRadial_GroundState(t *testing.T) {
	c := special.NewCache()
	for _, r := range []float64{0, 0.5, 1, 3, 10} {
		assert.InDelta(t, math.Exp(-r), c.Radial(1, 0, r), 1e-15, "R(1,0,%g)", r)
	}
}

// TestRadial_Nodes checks that R(n,0,r) has n−1 sign changes on (0, 40n).
func TestRadial_Nodes(t *testing.T) {
	c := special.NewCache()
	for n := 1; n <= 5; n++ {
		changes := 0
		prev := c.Radial(n, 0, 1e-6)
		for i := 1; i <= 4000; i++ {
			r := float64(i) * 0.01 * float64(n)
			v := c.Radial(n, 0, r)
			if v*prev < 0 {
				changes++
			}
			if v != 0 {
				prev = v
			}
		}
		assert.Equal(t, n-1, changes, "radial nodes for n=%d", n)
	}
}
