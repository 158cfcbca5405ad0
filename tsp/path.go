package tsp

// Path is a cyclic sequence p[0..N-1] of distinct vertex indices in
// [0, N), interpreted as the cycle p[0] -> p[1] -> ... -> p[N-1] -> p[0].
// Unlike a "closed" tour representation (length N+1, duplicated start/end
// vertex), a Path never materializes the wrap-around edge as a slice
// element — twist must handle it explicitly.
type Path struct {
	p []int
}

// NewPath wraps perm as a Path without copying. Callers that need an
// independent Path should copy perm first.
//
// Contract: len(perm) >= 2 and perm is a permutation of [0, len(perm)).
// Violations are a programmer error; NewPath does not validate on the
// hot path, debugAssertHamiltonian does in debug builds.
func NewPath(perm []int) Path {
	debugAssertHamiltonian(perm)
	return Path{p: perm}
}

// Len returns N.
func (p Path) Len() int {
	return len(p.p)
}

// At returns the vertex at position k.
func (p Path) At(k int) int {
	return p.p[k]
}

// Slice returns the underlying vertex sequence. Callers must not retain a
// mutable alias across a Twist call without understanding that Twist
// mutates in place.
func (p Path) Slice() []int {
	return p.p
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make([]int, len(p.p))
	copy(out, p.p)
	return Path{p: out}
}

// Edges yields the N ordered pairs (p[0],p[1]), (p[1],p[2]), ...,
// (p[N-2],p[N-1]), (p[N-1],p[0]).
//
// Complexity: O(N) time, O(N) space for the returned slice.
func (p Path) Edges() [][2]int {
	n := len(p.p)
	out := make([][2]int, n)
	for i := 0; i < n; i++ {
		next := i + 1
		if next == n {
			next = 0
		}
		out[i] = [2]int{p.p[i], p.p[next]}
	}
	return out
}

// InterpolateEdges yields all pairs (p[i], p[j]) with j >= i+1+skip, in
// lexicographic (i,j) order. With skip=1 this is exactly the candidate
// set consumed by local search: adjacent tour edges are never crossed
// with themselves.
//
// Complexity: O(N²) time, O(N²) space for the returned slice.
func (p Path) InterpolateEdges(skip int) [][2]int {
	n := len(p.p)
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1 + skip; j < n; j++ {
			out = append(out, [2]int{p.p[i], p.p[j]})
		}
	}
	return out
}

// Twist reverses the segment of the cyclic sequence from position i to
// position j inclusive, where i and j are positions, not vertices. Two
// cases:
//
//  1. i <= j: swap p[i]<->p[j], p[i+1]<->p[j-1], ... until indices cross.
//  2. i > j: the segment wraps around the cycle boundary (the arc from i
//     forward to j passes through index 0). segmentLen = N - (i - j + 1),
//     two less than the number of positions on that wrapped arc.
//     middle = (i + segmentLen/2) mod N. Swap p[i]<->p[j] repeatedly, advancing i forward and j
//     backward (mod N), until i == middle.
//
// Twist is its own inverse: Twist(i,j) followed by Twist(i,j) with the
// same indices restores p.
//
// Complexity: O(segment length) time, O(1) space.
func (p Path) Twist(i, j int) {
	n := len(p.p)
	if i <= j {
		for i < j {
			p.p[i], p.p[j] = p.p[j], p.p[i]
			i++
			j--
		}
	} else {
		segmentLen := n - (i - j + 1)
		middle := (i + segmentLen/2) % n
		for {
			p.p[i], p.p[j] = p.p[j], p.p[i]
			if i == middle {
				break
			}
			i = (i + 1) % n
			j = (j + n - 1) % n
		}
	}
	debugAssertHamiltonian(p.p)
}

// IsHamiltonian reports whether perm is a permutation of [0, len(perm)).
//
// Complexity: O(N) time, O(N) space.
func IsHamiltonian(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, v := range perm {
		if v < 0 || v >= len(perm) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
