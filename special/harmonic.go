// SPDX-License-Identifier: MIT

package special

import "math"

// SphericalHarmonic returns Y(l,m,θ,φ) as a complex number:
//
//	N = √[(2l+1)·(l−|m|)! / (4π·(l+|m|)!)]
//	Y = N · P(l,|m|,cos θ) · (cos mφ + i·sin mφ)
//
// For negative odd m both components are negated. That sign rule is kept
// as-is: real, imaginary and phase projections depend on it.
//
// Results are memoized by (l, m, θ, φ) with angles rounded to 6 decimals, so
// two angles closer than 5e-7 share one entry.
func (c *Cache) SphericalHarmonic(l, m int, theta, phi float64) complex128 {
	key := newHarmonicKey(l, m, theta, phi)
	if v, ok := c.harmonics[key]; ok {
		return v
	}

	am := m
	if am < 0 {
		am = -am
	}
	norm := math.Sqrt(float64(2*l+1) * c.Factorial(l-am) /
		(4 * math.Pi * c.Factorial(l+am)))
	legendre := AssociatedLegendre(l, am, math.Cos(theta))

	mphi := float64(m) * phi
	re, im := math.Cos(mphi), math.Sin(mphi)
	if m < 0 && m%2 != 0 {
		norm = -norm
	}
	v := complex(norm*legendre*re, norm*legendre*im)
	c.storeHarmonic(key, v)

	return v
}
