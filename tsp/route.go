package tsp

import "github.com/katalvlaran/glstsp/matrix"

// Route pairs a Path with its cost under whichever cost function the
// caller is currently driving with (pure distance, or distance + λ·
// penalty). cost is derived state: every mutation of the path must either
// recompute cost from scratch (RecomputeCost) or apply an exact delta
// (Twist) — mixing the two regimes inside one logical pass is a
// correctness bug.
type Route struct {
	path Path
	cost int32
}

// NewRoute builds a Route over perm with cost computed from dist. n must
// equal dist.Size(); perm must be Hamiltonian over [0, n).
func NewRoute(perm []int, dist *matrix.Symmetric) Route {
	r := Route{path: NewPath(perm)}
	r.RecomputeCost(dist)
	return r
}

// Cost returns the route's current cost field.
func (r Route) Cost() int32 {
	return r.cost
}

// Path returns the underlying vertex sequence (see Path.Slice).
func (r Route) Path() []int {
	return r.path.Slice()
}

// Len returns N.
func (r Route) Len() int {
	return r.path.Len()
}

// RecomputeCost sets r.cost to the exact sum of dist over r.path.Edges().
// Use after any change of cost function (pure distance <-> penalised) or
// whenever an incremental delta is not readily available.
//
// Complexity: O(N).
func (r *Route) RecomputeCost(dist *matrix.Symmetric) {
	r.cost = int32(dist.Sum(r.path.Edges()))
}

// Twist applies Path.Twist(i,j) and adds delta to r.cost in the same
// step, keeping the derived cost field exactly in sync with the
// structural mutation.
func (r *Route) Twist(i, j int, delta int32) {
	r.path.Twist(i, j)
	r.cost += delta
}
