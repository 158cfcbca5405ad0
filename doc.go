// Package glstsp is a from-scratch Guided Local Search (GLS) solver for
// the symmetric Euclidean Travelling Salesman Problem.
//
// # What is glstsp?
//
//	A small, dependency-light toolkit that brings together:
//
//	  - point   — coordinate parsing and the integer-truncated distance metric
//	  - matrix  — a dense symmetric int32 container, used both as the
//	              distance matrix and as the mutable GLS penalty matrix
//	  - tsp     — nearest-neighbour construction, first-improvement 2-opt,
//	              and the Guided Local Search outer loop
//
// # Why Guided Local Search?
//
// Plain 2-opt gets stuck in the first local optimum it finds. GLS escapes
// by penalising the edges that make up the current tour's costliest
// features and re-running local search under the inflated cost, cycling
// through a sequence of local optima until the step budget runs out. There
// is no proof of optimality and no wall-clock stopping condition — only a
// fixed number of GLS steps, which is what keeps the whole solve
// deterministic.
//
// Under the hood, everything is organized under three subpackages:
//
//	point/  — Point type, ParsePoint, LoadPoints, Distance
//	matrix/ — Symmetric, a row-major dense int32 matrix
//	tsp/    — Path, Route, NearestNeighbor, LocalSearch, Solver
//
// Quick example:
//
//	pts, err := point.LoadPoints(r)
//	solver, err := tsp.Build(pts)
//	route, err := solver.Solve(seed, steps)
//	fmt.Println(route.Cost(), route.Path())
//
//	go get github.com/katalvlaran/glstsp
//
// See DESIGN.md for the package layout rationale and notes on what each
// component is built on, and tsp's Example for a runnable example.
package glstsp
