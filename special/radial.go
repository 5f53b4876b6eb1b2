// SPDX-License-Identifier: MIT

package special

import "math"

// BohrRadius is a₀ in the length unit of every position handled by this module.
const BohrRadius = 1.0

// Radial evaluates the radial part R(n,l,r) of a hydrogen-like orbital:
//
//	norm = √[(2/(n·a₀)) · (n−l−1)! / (2n·(n+l)!)]
//	ρ    = 2r / (n·a₀)
//	R    = norm · e^(−ρ/2) · ρ^l · L(n−l−1, 2l+1, ρ)
//
// The normalization is the one the renderer was tuned for; it is not the
// textbook (2/(n·a₀))³ form and only scales the density by a constant.
func (c *Cache) Radial(n, l int, r float64) float64 {
	fn := float64(n)
	norm := math.Sqrt((2 / (fn * BohrRadius)) * c.Factorial(n-l-1) /
		(2 * fn * c.Factorial(n+l)))

	rho := 2 * r / (fn * BohrRadius)
	poly := math.Pow(rho, float64(l)) * Laguerre(n-l-1, float64(2*l+1), rho)

	return norm * math.Exp(-rho/2) * poly
}
