// SPDX-License-Identifier: MIT

package special

import "math"

// AssociatedLegendre evaluates the associated Legendre function P(l,|m|,x).
//
// Only |m| is used. The value is 0 when l < |m|. Closed forms:
//
//	P(0,0,x) = 1
//	P(1,0,x) = x
//	P(1,1,x) = −√(1−x²)
//	P(m,m,x) = (−1)^m · (2m−1)!! · (1−x²)^(m/2)
//	P(m+1,m,x) = x · (2m+1) · P(m,m,x)
//
// and the three-term recurrence for the rest:
//
//	P(l,m,x) = [x(2l−1)·P(l−1,m,x) − (l+m−1)·P(l−2,m,x)] / (l−m)
//
// The recurrence is swept upward from the diagonal, so each call is O(l)
// and yields exactly the values of the recursive definition.
func AssociatedLegendre(l, m int, x float64) float64 {
	am := m
	if am < 0 {
		am = -am
	}
	if l < am {
		return 0
	}

	pPrev := legendreDiagonal(am, x)
	if l == am {
		return pPrev
	}

	pCurr := x * float64(2*am+1) * pPrev
	for ll := am + 2; ll <= l; ll++ {
		pNext := (x*float64(2*ll-1)*pCurr - float64(ll+am-1)*pPrev) / float64(ll-am)
		pPrev, pCurr = pCurr, pNext
	}

	return pCurr
}

// legendreDiagonal returns P(m,m,x) for m ≥ 0.
func legendreDiagonal(m int, x float64) float64 {
	switch m {
	case 0:
		return 1
	case 1:
		return -math.Sqrt(1 - x*x)
	}
	factor := math.Pow(-1, float64(m)) * DoubleFactorial(2*m-1)

	return factor * math.Pow(1-x*x, float64(m)/2)
}
