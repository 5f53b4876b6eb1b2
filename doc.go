// SPDX-License-Identifier: MIT

// Package orbitals turns hydrogen-like wavefunctions into point clouds a
// renderer can draw.
//
// 🚀 What is orbitals?
//
//	A small numerical stack, bottom-up:
//		• special/    — factorials, associated Legendre, generalized Laguerre,
//		                 spherical harmonics and radial functions, memoized
//		• wavefunc/   — ψ_nlm(r,θ,φ) and |ψ|² at Cartesian points
//		• mcmc/       — Metropolis–Hastings sampling with warmup step tuning
//		• projection/ — one display scalar per sample (real, imaginary,
//		                 modulus, density, phase, complex)
//		• orbital/    — the renderer-facing Calculator and concurrent batches
//		• config/     — YAML + environment settings for the binary
//		• cmd/orbitals — sample, batch, walk and modes from the shell
//
// ✨ Guarantees
//
//   - Quantum numbers are clamped, never rejected: 1≤n≤20, 0≤l<n, |m|≤l.
//   - A cloud has exactly the requested number of points.
//   - Same seed, same orbital, same size ⇒ identical cloud.
//   - Batches are identical for any worker count.
//
// Quick example:
//
//	calc := orbital.New(orbital.WithSeed(7))
//	calc.SetOrbital(3, 2, 1)
//	calc.SetVisualizationMode("complex")
//	res, _ := calc.CalculatePointCloud(100000)
//	// res.Positions: x,y,z per point; res.Values: brightness per point
//	// calc.PhaseValues(): hue per point
//
// Lengths are in Bohr radii (a₀ = 1). The scene spans 20·n·a₀.
//
//	go get github.com/katalvlaran/orbitals
package orbitals
