// Package matrix provides a dense, symmetric, fixed-size matrix of 32-bit
// signed integers.
//
// Symmetric is used in two roles by the tsp package: as an immutable
// distance matrix (built once from a set of points) and as a mutable
// penalty matrix (monotonically incremented by Guided Local Search). Both
// roles share the same O(1) get/set container; the distance role simply
// never calls Set after construction.
//
// # Layout
//
// Data is stored as a flat row-major N×N buffer, matching the layout used
// throughout this module's reference sources: two physical copies of every
// off-diagonal entry, traded for O(1) access with no index translation.
// Set keeps both copies in sync, so Get(i,j) == Get(j,i) holds after every
// mutation.
//
// # Complexity
//
// NewSymmetric is O(N²) time and space. Get/Set are O(1). Sum
// over a caller-supplied edge list is O(len(edges)).
package matrix
