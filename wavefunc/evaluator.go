// SPDX-License-Identifier: MIT

package wavefunc

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/orbitals/special"
	"gonum.org/v1/gonum/spatial/r3"
)

// OriginRadius is the distance below which a point is treated as the nucleus.
const OriginRadius = 1e-10

// isotropicNorm is Y(0,0) = √(1/4π).
var isotropicNorm = math.Sqrt(1 / (4 * math.Pi))

// Evaluator computes orbital amplitudes backed by its own special.Cache.
type Evaluator struct {
	cache *special.Cache
}

// New returns an Evaluator with a fresh cache built from opts.
func New(opts ...special.CacheOption) *Evaluator {
	return &Evaluator{cache: special.NewCache(opts...)}
}

// Cache exposes the evaluator's memo tables (read-mostly; used for diagnostics).
func (e *Evaluator) Cache() *special.Cache {
	return e.cache
}

// Psi returns ψ in spherical coordinates: R(n,l,r) times Y(l,m,θ,φ).
func (e *Evaluator) Psi(n, l, m int, r, theta, phi float64) complex128 {
	radial := e.cache.Radial(n, l, r)
	angular := e.cache.SphericalHarmonic(l, m, theta, phi)

	return complex(radial*real(angular), radial*imag(angular))
}

// PsiAt returns ψ at the Cartesian point p.
//
// At the nucleus (|p| < OriginRadius) the value is fixed by convention rather
// than by a limit: s orbitals give R(n,0,0)·√(1/4π), every l > 0 gives 0.
func (e *Evaluator) PsiAt(n, l, m int, p r3.Vec) complex128 {
	r := r3.Norm(p)
	if r < OriginRadius {
		if l == 0 {
			return complex(e.cache.Radial(n, 0, 0)*isotropicNorm, 0)
		}
		return 0
	}

	cosTheta := p.Z / r
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	theta := math.Acos(cosTheta)
	phi := math.Atan2(p.Y, p.X)

	return e.Psi(n, l, m, r, theta, phi)
}

// Density returns |ψ|² at p.
func (e *Evaluator) Density(n, l, m int, p r3.Vec) float64 {
	return squaredModulus(e.PsiAt(n, l, m, p))
}

// Bind fixes the quantum numbers and returns an Orbital view over e.
// The numbers are used as given; clamping belongs to the caller.
func (e *Evaluator) Bind(n, l, m int) Orbital {
	return Orbital{N: n, L: l, M: m, eval: e}
}

// Orbital is an Evaluator bound to one (n,l,m).
type Orbital struct {
	N, L, M int
	eval    *Evaluator
}

// Psi returns ψ(p) for the bound orbital.
func (o Orbital) Psi(p r3.Vec) complex128 {
	return o.eval.PsiAt(o.N, o.L, o.M, p)
}

// Density returns |ψ(p)|² for the bound orbital.
func (o Orbital) Density(p r3.Vec) float64 {
	return squaredModulus(o.Psi(p))
}

// Scale is the orbital's characteristic length n·a₀.
func (o Orbital) Scale() float64 {
	return float64(o.N) * special.BohrRadius
}

func squaredModulus(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}

// Modulus returns |ψ|.
func Modulus(z complex128) float64 { return cmplx.Abs(z) }

// Phase returns arg ψ in (−π, π].
func Phase(z complex128) float64 { return cmplx.Phase(z) }
