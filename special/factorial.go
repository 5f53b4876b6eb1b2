// SPDX-License-Identifier: MIT

package special

// Factorial returns k! as float64, memoized in c. Factorial(k) = 1 for k ≤ 1.
//
// Values are exact up to 22!; orbitals with n ≤ 20 never need more than 39!,
// where float64 keeps ~15 significant digits.
func (c *Cache) Factorial(k int) float64 {
	if k <= 1 {
		return 1
	}
	if v, ok := c.factorials[k]; ok {
		return v
	}

	result := 1.0
	for i := 2; i <= k; i++ {
		result *= float64(i)
	}
	c.factorials[k] = result

	return result
}

// DoubleFactorial returns k·(k−2)·(k−4)···, ending at 1 or 2.
// DoubleFactorial(k) = 1 for k ≤ 1, which covers (−1)!! = 1.
func DoubleFactorial(k int) float64 {
	if k <= 1 {
		return 1
	}

	result := float64(k)
	for i := k - 2; i > 0; i -= 2 {
		result *= float64(i)
	}

	return result
}
