// SPDX-License-Identifier: MIT

// Package wavefunc evaluates hydrogen-like orbital wavefunctions ψ(n,l,m) at
// points in 3D space.
//
// ψ(n,l,m,r,θ,φ) = R(n,l,r) · Y(l,m,θ,φ), returned as complex128.
//
// An Evaluator owns the memo tables of the special package. It is NOT safe for
// concurrent use: sampling runs that execute in parallel must each create
// their own Evaluator so caches are never shared.
package wavefunc
