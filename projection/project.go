// SPDX-License-Identifier: MIT

package projection

import (
	"math"

	"github.com/katalvlaran/orbitals/mcmc"
	"gonum.org/v1/gonum/floats"
)

// Project returns one display value per sample for mode.
//
// Stage 1 selects a raw scalar per sample; Stage 2 normalizes across the
// whole cloud according to the mode (see the package doc). The result has
// len(samples) entries and never aliases the input.
//
// Complexity: O(N) time, O(N) space.
func Project(mode Mode, samples []mcmc.Sample) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}

	for i, s := range samples {
		out[i] = rawValue(mode, s)
	}

	switch mode {
	case Phase:
		// already in [0,1)
	case Real, Imaginary:
		normalizeSigned(out)
	default:
		normalizeMinMax(out)
	}

	return out
}

// PhaseChannel returns (arg ψ + π)/2π in [0,1) per sample: the hue channel that
// accompanies Complex brightness values.
func PhaseChannel(samples []mcmc.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = unitPhase(s.Phase())
	}
	return out
}

func rawValue(mode Mode, s mcmc.Sample) float64 {
	switch mode {
	case Real:
		return s.Real()
	case Imaginary:
		return s.Imag()
	case Density:
		return s.Density()
	case Phase:
		return unitPhase(s.Phase())
	}
	return s.Modulus()
}

// unitPhase maps a phase in [−π, π] to [0,1); +π and −π both land on 0.
func unitPhase(phase float64) float64 {
	u := (phase + math.Pi) / (2 * math.Pi)
	if u >= 1 {
		u -= 1
	}
	return u
}

// normalizeSigned scales by the max |x| and shifts into [0,1].
// An all-zero channel is left untouched.
func normalizeSigned(v []float64) {
	maxAbs := math.Max(floats.Max(v), -floats.Min(v))
	if maxAbs == 0 {
		return
	}
	for i := range v {
		v[i] = (v[i]/maxAbs + 1) / 2
	}
}

// normalizeMinMax maps [min,max] linearly onto [0,1].
// A constant channel is left untouched.
func normalizeMinMax(v []float64) {
	lo, hi := floats.Min(v), floats.Max(v)
	if lo == hi {
		return
	}
	span := hi - lo
	for i := range v {
		v[i] = (v[i] - lo) / span
	}
}
