// SPDX-License-Identifier: MIT

package mcmc

import (
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r3"
)

// Target is the density a chain samples from. wavefunc.Orbital implements it.
type Target interface {
	// Density returns the unnormalized probability density at p (≥ 0).
	Density(p r3.Vec) float64
	// Psi returns the complex amplitude recorded with every emitted sample.
	Psi(p r3.Vec) complex128
	// Scale is the characteristic length used for the first step and the box size.
	Scale() float64
}

// Sample is one emitted chain position with its amplitude.
type Sample struct {
	Position r3.Vec
	Psi      complex128
}

// Real returns Re ψ.
func (s Sample) Real() float64 { return real(s.Psi) }

// Imag returns Im ψ.
func (s Sample) Imag() float64 { return imag(s.Psi) }

// Modulus returns |ψ|.
func (s Sample) Modulus() float64 { return cmplx.Abs(s.Psi) }

// Density returns |ψ|².
func (s Sample) Density() float64 {
	m := s.Modulus()
	return m * m
}

// Phase returns arg ψ in [−π, π].
func (s Sample) Phase() float64 { return cmplx.Phase(s.Psi) }

// Stats summarizes one run.
type Stats struct {
	Accepted int     // accepted proposals, warmup included
	Total    int     // proposals, warmup included
	WarmUp   int     // warmup iterations
	StepSize float64 // step size after tuning
}

// PointCloud is the immutable result of one run.
type PointCloud struct {
	// Samples has exactly the requested length; rejected steps repeat positions.
	Samples []Sample

	// AcceptanceRate is Accepted/Total over the whole run, in [0,1].
	AcceptanceRate float64

	// BoxSize is the scene extent (SceneScale·n·a₀). It is unrelated to the
	// cube the chain was seeded in.
	BoxSize float64

	Stats Stats
}

// Len returns the number of samples.
func (pc *PointCloud) Len() int {
	return len(pc.Samples)
}

// Positions flattens sample positions as x0,y0,z0,x1,y1,z1,...
func (pc *PointCloud) Positions() []float64 {
	out := make([]float64, 0, 3*len(pc.Samples))
	for _, s := range pc.Samples {
		out = append(out, s.Position.X, s.Position.Y, s.Position.Z)
	}
	return out
}
