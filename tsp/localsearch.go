package tsp

import "github.com/katalvlaran/glstsp/matrix"

// penalizedEdgeCost returns c(a,b) = distance[a,b] + lambda*penalty[a,b].
// lambda == 0 degenerates to pure distance.
func penalizedEdgeCost(dist, penalty *matrix.Symmetric, lambda int32, a, b int) int64 {
	return int64(dist.GetUnchecked(a, b)) + int64(lambda)*int64(penalty.GetUnchecked(a, b))
}

// penalizedRouteCost sums penalizedEdgeCost over every edge of r's path.
//
// Complexity: O(N).
func penalizedRouteCost(r *Route, dist, penalty *matrix.Symmetric, lambda int32) int32 {
	var total int64
	for _, e := range r.path.Edges() {
		total += penalizedEdgeCost(dist, penalty, lambda, e[0], e[1])
	}
	return int32(total)
}

// LocalSearch runs first-improvement 2-opt over r under the penalised
// cost c(a,b) = distance[a,b] + lambda*penalty[a,b].
//
// order is the frozen shuffled neighbourhood; the scan enumerates
// candidate position pairs via Path(order).InterpolateEdges(skip=1), in
// lexicographic order, and restarts from the beginning of that sequence
// after every accepted move. This combination — the shuffled order, the
// lexicographic scan, and first-improvement acceptance — is what makes
// runs seed-deterministic.
//
// r.cost is recomputed as the penalised total before scanning starts, and
// delta-updated on every accepted move afterward; callers must not read
// r.Cost() as a pure-distance value while lambda != 0.
//
// Complexity: O(N²) per full scan, repeated until no improving move is
// found; O(1) extra space beyond the precomputed candidate list.
func LocalSearch(r *Route, order []int, lambda int32, dist, penalty *matrix.Symmetric) {
	r.cost = penalizedRouteCost(r, dist, penalty, lambda)

	n := r.path.Len()
	candidates := NewPath(append([]int(nil), order...)).InterpolateEdges(1)

	for {
		improved := false
		for _, cand := range candidates {
			i, j := cand[0], cand[1]
			iNext := (i + 1) % n
			jNext := (j + 1) % n

			a := r.path.At(i)
			aNext := r.path.At(iNext)
			b := r.path.At(j)
			bNext := r.path.At(jNext)

			delta := (penalizedEdgeCost(dist, penalty, lambda, a, b) +
				penalizedEdgeCost(dist, penalty, lambda, aNext, bNext)) -
				(penalizedEdgeCost(dist, penalty, lambda, a, aNext) +
					penalizedEdgeCost(dist, penalty, lambda, b, bNext))

			if delta < 0 {
				r.Twist(iNext, j, int32(delta))
				improved = true
				break
			}
		}
		if !improved {
			return
		}
	}
}
