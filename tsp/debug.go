//go:build debug

package tsp

// debugAssertHamiltonian panics if perm is not a permutation of
// [0, len(perm)). Compiled in only under `-tags debug`: a debug build
// asserts invariants that a release build elides for speed.
func debugAssertHamiltonian(perm []int) {
	if !IsHamiltonian(perm) {
		panic("tsp: path is not Hamiltonian")
	}
}
