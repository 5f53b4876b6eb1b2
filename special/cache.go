// SPDX-License-Identifier: MIT

package special

import "math"

// harmonicScale rounds θ and φ to 6 decimals before they are used as memo keys.
const harmonicScale = 1e6

// harmonicKey identifies one memoized spherical-harmonic value.
type harmonicKey struct {
	l, m       int
	theta, phi int64
}

// Cache holds the factorial and spherical-harmonic memo tables.
// Entries are never evicted; the cache lives as long as its owner.
//
// The zero value is not usable; call NewCache.
type Cache struct {
	factorials map[int]float64
	harmonics  map[harmonicKey]complex128

	// harmonicLimit caps the number of stored harmonics; 0 means unbounded.
	harmonicLimit int
}

// CacheOption customizes a Cache at construction time.
type CacheOption func(*Cache)

// WithHarmonicLimit caps the spherical-harmonic table at n entries. Once full,
// new values are still computed and returned but no longer stored.
// Panics if n < 0.
func WithHarmonicLimit(n int) CacheOption {
	if n < 0 {
		panic("special: WithHarmonicLimit(n<0)")
	}
	return func(c *Cache) {
		c.harmonicLimit = n
	}
}

// NewCache returns an empty memo table.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		factorials: make(map[int]float64),
		harmonics:  make(map[harmonicKey]complex128),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len reports the number of memoized factorials and spherical harmonics.
func (c *Cache) Len() (factorials, harmonics int) {
	return len(c.factorials), len(c.harmonics)
}

func newHarmonicKey(l, m int, theta, phi float64) harmonicKey {
	return harmonicKey{
		l:     l,
		m:     m,
		theta: int64(math.Round(theta * harmonicScale)),
		phi:   int64(math.Round(phi * harmonicScale)),
	}
}

func (c *Cache) storeHarmonic(k harmonicKey, v complex128) {
	if c.harmonicLimit > 0 && len(c.harmonics) >= c.harmonicLimit {
		return
	}
	c.harmonics[k] = v
}
