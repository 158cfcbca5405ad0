package tsp

import (
	"github.com/katalvlaran/glstsp/matrix"
	"github.com/katalvlaran/glstsp/point"
)

// Solver holds the read-only distance matrix for one problem instance and
// dispatches Solve calls against it. The distance matrix is built once
// and never mutated afterward.
type Solver struct {
	dist *matrix.Symmetric
	opts GLSOptions
}

// Build constructs a Solver from a point set: the distance matrix is
// assembled once, in O(N²) time and memory.
func Build(points []point.Point) (*Solver, error) {
	return BuildWithOptions(points, DefaultGLSOptions())
}

// BuildWithOptions is Build with an explicit GLSOptions, for callers that
// need a non-default penalty-factor fraction.
func BuildWithOptions(points []point.Point, opts GLSOptions) (*Solver, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n == 1 {
		return nil, ErrSingletonInput
	}

	dist, err := matrix.NewSymmetric(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// i < j < n by construction: Set cannot fail here.
			_ = dist.Set(i, j, point.Distance(points[i], points[j]))
		}
	}

	return &Solver{dist: dist, opts: opts}, nil
}

// Solve runs Guided Local Search and returns the resulting Route.
// Solve(seed, steps) is a pure function: two calls with the same
// (points, seed, steps) on the same Solver yield byte-identical routes.
//
// Algorithm:
//  1. Seed MT19937-64 from seed and Fisher-Yates shuffle [0,N) once to
//     produce the frozen neighbourhood order.
//  2. Build the initial route via nearest-neighbour.
//  3. Run local search at lambda=0 (pure distance).
//  4. Derive lambda = floor(LambdaFraction * cost / N).
//  5. Repeat `steps` times: penalise the max-utility edges, then run
//     local search under the current lambda/penalty.
//  6. Run a final local search at lambda=0 and return the pure-distance
//     route.
func (s *Solver) Solve(seed uint64, steps int) (Route, error) {
	n := s.dist.Size()
	order := shuffleOrder(n, seed)

	route := NewRoute(NearestNeighbor(s.dist), s.dist)

	penalty, err := matrix.NewSymmetric(n)
	if err != nil {
		return Route{}, err
	}

	LocalSearch(&route, order, 0, s.dist, penalty)
	route.RecomputeCost(s.dist)

	lambda := int32(s.opts.LambdaFraction * float64(route.Cost()) / float64(n))

	for step := 0; step < steps; step++ {
		edges := route.path.Edges()
		utilities := make([]int32, len(edges))
		var maxUtility int32 = -1
		for idx, e := range edges {
			u := int32(int64(s.dist.GetUnchecked(e[0], e[1])) / (1 + int64(penalty.GetUnchecked(e[0], e[1]))))
			utilities[idx] = u
			if u > maxUtility {
				maxUtility = u
			}
		}
		for idx, e := range edges {
			if utilities[idx] == maxUtility {
				penalty.AddUnchecked(e[0], e[1], 1)
			}
		}

		LocalSearch(&route, order, lambda, s.dist, penalty)
	}

	LocalSearch(&route, order, 0, s.dist, penalty)
	route.RecomputeCost(s.dist)

	return route, nil
}
