// SPDX-License-Identifier: MIT

// Package projection turns sampled ψ values into one display scalar per point.
//
// Modes and their post-processing:
//
//	real, imaginary        — divide by the cloud-wide max |x|, then (x+1)/2 → [0,1]
//	modulus, density       — cloud-wide min–max normalization → [0,1]
//	complex                — modulus as brightness (min–max), phase via PhaseChannel
//	phase                  — (arg ψ + π)/2π → [0,1), no further normalization
//
// Degenerate clouds pass through: an all-zero real/imaginary channel is left
// as-is, and a constant modulus/density channel is returned unnormalized.
package projection
