// SPDX-License-Identifier: MIT

package orbital

import "fmt"

// Quantum number bounds.
const (
	MinN = 1
	MaxN = 20
)

// State is a valid (n,l,m) triple: 1≤n≤20, 0≤l≤n−1, −l≤m≤l.
type State struct {
	N, L, M int
}

// DefaultState is the orbital a fresh Calculator starts on (2p, m=1).
var DefaultState = State{N: 2, L: 1, M: 1}

// Clamp builds a valid State, clamping n first, then l against the clamped n,
// then m against the clamped l.
func Clamp(n, l, m int) State {
	n = clampInt(n, MinN, MaxN)
	l = clampInt(l, 0, n-1)
	m = clampInt(m, -l, l)
	return State{N: n, L: l, M: m}
}

// Valid reports whether s satisfies the quantum number bounds.
func (s State) Valid() bool {
	return s.N >= MinN && s.N <= MaxN &&
		s.L >= 0 && s.L < s.N &&
		s.M >= -s.L && s.M <= s.L
}

// String formats s as (n,l,m).
func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.N, s.L, s.M)
}

// Next returns the orbital after s in (n, l, m) order: m rises to l, then l
// rises with m restarting at −l, then n rises with l=0. Past maxN it wraps
// to (1,0,0). maxN is clamped into [1,20]; s is assumed valid.
func (s State) Next(maxN int) State {
	maxN = clampInt(maxN, MinN, MaxN)
	n, l, m := s.N, s.L, s.M+1
	if m > l {
		l++
		if l >= n {
			l = 0
			n++
			if n > maxN {
				n = MinN
			}
		}
		m = -l
	}
	return State{N: n, L: l, M: m}
}

// Prev is the inverse of Next: below (1,0,0) it wraps to (maxN, maxN−1, maxN−1).
func (s State) Prev(maxN int) State {
	maxN = clampInt(maxN, MinN, MaxN)
	n, l, m := s.N, s.L, s.M-1
	if m < -l {
		l--
		if l < 0 {
			n--
			if n < MinN {
				n = maxN
			}
			l = n - 1
		}
		m = l
	}
	return State{N: n, L: l, M: m}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
