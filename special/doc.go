// SPDX-License-Identifier: MIT

// Package special provides the special functions behind hydrogen-like orbitals:
// factorials, associated Legendre functions, generalized Laguerre polynomials,
// spherical harmonics and the radial wavefunction.
//
// 🚀 What lives here?
//
//   - Factorial / DoubleFactorial — exact small-integer products in float64
//   - AssociatedLegendre        — P(l,|m|,x) with the Condon–Shortley sign in the diagonal
//   - Laguerre                  — L(n,α,x) by three-term recurrence
//   - SphericalHarmonic         — Y(l,m,θ,φ) as complex128, memoized
//   - Radial                    — R(n,l,r) with Bohr radius a₀ = 1
//
// Memoization is explicit: every memoized function is a method on a caller-owned
// *Cache. A Cache is NOT safe for concurrent use; give each sampling run its own.
//
// ⚙️ Usage:
//
//	c := special.NewCache()
//	y := c.SphericalHarmonic(2, 1, theta, phi)
//	r := c.Radial(3, 1, 4.2)
//
// Complexity:
//
//	AssociatedLegendre and Laguerre are O(l) and O(n) respectively; memo lookups are O(1).
package special
