// Package tsp implements a Guided Local Search solver, layered on 2-opt
// local search, for the symmetric Euclidean Travelling Salesman Problem.
//
// Design goals:
//   - Determinism: solve(seed, steps) is a pure function of its inputs;
//     the only randomness is a single frozen neighbourhood shuffle.
//   - Mathematical rigor: the nearest-neighbour construction, the twist
//     primitive, and the GLS utility rule reproduce a fixed reference
//     implementation exactly, oddities included.
//   - Zero surprises on well-formed input; preconditions are programmer
//     contracts, not user-recoverable errors (see Errors below).
package tsp

import "errors"

// Sentinel errors returned by this package. Always compare with errors.Is.
var (
	// ErrEmptyInput is returned by Build when given zero points.
	ErrEmptyInput = errors.New("tsp: empty point set")

	// ErrSingletonInput is returned by Build when given exactly one point;
	// a tour needs at least two vertices to have an edge.
	ErrSingletonInput = errors.New("tsp: single-point instance has no tour")
)

// GLSOptions tunes the Guided Local Search engine beyond the seed/steps
// pair that Solver.Solve exposes. The zero value is not meaningful; use
// DefaultGLSOptions and override fields as needed.
type GLSOptions struct {
	// LambdaFraction is the fraction of the distance-only local-search
	// cost used to derive the penalty factor λ:
	// λ = floor(LambdaFraction * cost / N). Default: 0.3.
	LambdaFraction float64
}

// DefaultGLSOptions returns the reference penalty-factor fraction matching
// the canonical Guided Local Search parameterisation.
func DefaultGLSOptions() GLSOptions {
	return GLSOptions{
		LambdaFraction: 0.3,
	}
}
