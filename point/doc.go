// Package point provides the 2D integer coordinate type consumed by the
// tsp package, plus the minimal line-oriented loader for TSP instance
// files.
//
// A Point's coordinates are parsed as 32-bit floats and truncated (never
// rounded) to int32, and the distance between two points is the truncated
// Euclidean distance. Both truncations are load-bearing: they are part of
// the numeric contract that makes solve(seed, steps) reproducible byte for
// byte across runs, not an implementation shortcut.
package point
