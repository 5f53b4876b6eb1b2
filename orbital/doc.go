// SPDX-License-Identifier: MIT

// Package orbital is the boundary between the sampling core and a renderer.
//
// A Calculator holds the current quantum numbers and visualization mode,
// regenerates the whole point cloud on request, and hands back flat arrays:
//
//	Positions — x0,y0,z0,x1,y1,z1,... (stride 3)
//	Values    — one display scalar per point (stride 1), same indexing
//
// Quantum numbers are clamped, never rejected: n into [1,20], then l into
// [0,n−1], then m into [−l,l]. Every CalculatePointCloud call discards the
// previous cloud.
//
// ⚙️ Usage:
//
//	calc := orbital.New(orbital.WithSeed(42))
//	calc.SetOrbital(3, 2, 1)
//	calc.SetVisualizationMode("complex")
//	res, err := calc.CalculatePointCloud(orbital.SampleSize(4.5))
//	hue := calc.PhaseValues()
//
// A Calculator is not safe for concurrent use. GenerateBatch samples several
// orbitals in parallel, one Calculator (and one evaluator cache) per request.
package orbital
