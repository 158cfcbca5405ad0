package tsp

import "github.com/katalvlaran/glstsp/matrix"

// NearestNeighbor builds the initial tour for Guided Local Search.
//
// tour[0] = 0. For i = 0..N-2, tour[i+1] is chosen as the vertex v from
// {0..N-1} \ {tour[0..=i]} minimising dist[i, v] — note the lookup uses
// the loop counter i itself as the row, not tour[i]. This is a deliberate
// reproduction of a quirk in the reference implementation (almost
// certainly an off-by-one against the "intended" nearest-neighbour
// algorithm, which would index by tour[i]), frozen exactly as observed
// because the deterministic test oracles depend on it. Ties are broken
// by the smallest remaining-list index.
//
// Complexity: O(N²) time, O(N) space.
func NearestNeighbor(dist *matrix.Symmetric) []int {
	n := dist.Size()
	tour := make([]int, n)

	remaining := make([]int, n-1)
	for i := range remaining {
		remaining[i] = i + 1
	}

	for i := 0; i < n-1; i++ {
		bestPos := 0
		bestDist := dist.GetUnchecked(i, remaining[0])
		for pos := 1; pos < len(remaining); pos++ {
			d := dist.GetUnchecked(i, remaining[pos])
			if d < bestDist {
				bestDist = d
				bestPos = pos
			}
		}
		tour[i+1] = remaining[bestPos]
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
	}

	return tour
}
