// SPDX-License-Identifier: MIT

package orbital

import "math"

// MinInteractiveSamples is the smallest cloud SampleSize hands out.
const MinInteractiveSamples = 10000

// SampleSize converts a logarithmic slider position into a point count:
// ⌊10^exponent⌋, never below MinInteractiveSamples.
func SampleSize(exponent float64) int {
	v := math.Floor(math.Pow(10, exponent))
	if math.IsNaN(v) || v < MinInteractiveSamples {
		return MinInteractiveSamples
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
