// Package tsp provides a time-bounded heuristic for the Euclidean
// Travelling Salesman Problem.
//
// It builds a tour in two stages on an integer distance matrix
// (matrix.Matrix):
//
//   - NearestNeighbor: greedy construction from vertex 0.
//
//   - Complexity: O(n²)
//
//   - TwoOpt: deterministic first-improvement 2-opt, bounded by a deadline.
//
//   - Complexity: O(n²) per pass; a pass restarts after each accepted move.
//
// Solve chains both stages from raw points and returns a Result whose
// length is never worse than the nearest-neighbor tour.
//
// Routes are open permutations of {0..n-1}; the edge from the last vertex
// back to the first is implicit. The package never logs; all failures are
// sentinel errors from types.go.
package tsp
