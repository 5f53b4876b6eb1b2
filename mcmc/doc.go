// SPDX-License-Identifier: MIT

// Package mcmc draws orbital point clouds with a Metropolis–Hastings chain whose
// stationary distribution is the probability density |ψ|².
//
// 🚀 How a run works:
//
//	WARMUP  — min(5000, N/10) iterations; the step size is tuned every 500th
//	          iteration toward a 30–50 % acceptance window; nothing is emitted.
//	COLLECT — N iterations; after every proposal the *current* position is
//	          emitted, whether the proposal was accepted or not.
//
// Each iteration proposes current + U(−s/2, s/2)³ and accepts with probability
// min(1, ρ_new/ρ_cur). A chain sitting on ρ_cur = 0 moves to any ρ_new > 0.
//
// ⚙️ Usage:
//
//	target := wavefunc.New().Bind(3, 2, 1)
//	s, err := mcmc.New(target, mcmc.WithSeed(42))
//	cloud, err := s.Run(100_000)
//
// Determinism:
//
//	All randomness comes from one injected *rand.Rand (WithSeed / WithRand).
//	Same target, N and seed ⇒ bit-identical clouds.
//
// Concurrency:
//
//	A Sampler and its target are single-goroutine objects. Run blocks until
//	the whole cloud is produced; there is no mid-run cancellation.
package mcmc
