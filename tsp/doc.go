// Package tsp provides a Guided Local Search (GLS) solver, layered on
// 2-opt local search, for the symmetric Euclidean Travelling Salesman
// Problem. The package exposes a single deterministic entry point,
// Solver.Solve(seed, steps), behind a small, strictly sentinel-erroring
// API.
//
// # What & Why
//
// Given a set of N points in the plane, tsp computes a Hamiltonian cycle
// of low total length. There is no exact-optimality guarantee, no
// asymmetric-TSP support, and no wall-clock budget — progress is counted
// in GLS steps, not time.
//
//	Build(points) → Solver           // distance matrix, built once, O(N²)
//	Solver.Solve(seed, steps) → Route // pure function of its inputs
//
// # Algorithm & Complexity
//
//	Nearest-neighbour construction — O(N²)
//	  Deliberately indexes the distance matrix by the loop counter i
//	  rather than by the last chosen vertex; this reproduces a quirk in
//	  the reference implementation exactly, because the deterministic
//	  test oracles depend on it.
//
//	2-opt local search (first improvement) — O(N²) per scan
//	  Scans candidate pairs in Path(order).InterpolateEdges(skip=1) order,
//	  restarting from the beginning after every accepted move, under the
//	  penalised cost c(a,b) = distance[a,b] + lambda*penalty[a,b].
//
//	Guided Local Search outer loop — O(steps * N²)
//	  Each step penalises every tour edge tied for maximum utility
//	  u(e) = floor(distance[e] / (1 + penalty[e])), then reruns local
//	  search under the updated penalty matrix and a fixed lambda derived
//	  once from the distance-only local optimum.
//
// # Determinism & Stability
//
//   - The solver's only randomness is a single MT19937-64 shuffle of
//     [0, N), seeded once per Solve call and frozen for its duration. No
//     other source of non-determinism exists in the core.
//   - solve(seed, steps) is a pure function: identical (points, seed,
//     steps) always yields a byte-identical Route.
//   - All arithmetic (distance, utility, lambda) is computed in floating
//     point and truncated — never rounded — to a signed integer. This
//     truncation is part of the numeric contract, not an implementation
//     shortcut: substituting round() changes every oracle.
//
// # Input Requirements
//
//	Build requires at least two points (ErrEmptyInput, ErrSingletonInput).
//	There is no other precondition on point coordinates.
//
// # Errors (strict sentinels)
//
//	ErrEmptyInput, ErrSingletonInput.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices. All
// other preconditions (N >= 2 inside the core, a Hamiltonian path after
// every twist, in-range indices) are programmer contracts. A `-tags
// debug` build asserts only that the path is Hamiltonian, on NewPath and
// after every twist; a release build elides that check entirely rather
// than pay for it on every twist. N >= 2 and index ranges are not
// asserted in either build.
//
// # Results
//
//	type Route struct{ ... } // unexported fields
//	func (r Route) Cost() int32
//	func (r Route) Path() []int
//
// # Mathematics (references)
//
//	2-opt delta: (c(a,b)+c(a',b')) - (c(a,a')+c(b,b'))
//	Utility of an edge: distance / (1 + penalty)
//	Penalty factor: lambda = floor(LambdaFraction * cost / N)
package tsp
