// SPDX-License-Identifier: MIT

package special

// Laguerre evaluates the generalized Laguerre polynomial L(n,α,x) with
//
//	L₀ = 1
//	L₁ = 1 + α − x
//	Lᵢ₊₁ = [(2i+1+α−x)·Lᵢ − (i+α)·Lᵢ₋₁] / (i+1)
//
// n ≤ 0 yields 1.
func Laguerre(n int, alpha, x float64) float64 {
	if n <= 0 {
		return 1
	}
	l0 := 1.0
	l1 := 1 + alpha - x
	for i := 1; i < n; i++ {
		fi := float64(i)
		l2 := ((2*fi+1+alpha-x)*l1 - (fi+alpha)*l0) / (fi + 1)
		l0, l1 = l1, l2
	}

	return l1
}
