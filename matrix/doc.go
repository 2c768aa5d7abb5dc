// Package matrix stores the pairwise distances of a Euclidean instance.
//
// The package provides:
//
//   - Triangular, a packed lower-triangular store of integer-rounded
//     Euclidean distances with a symmetric O(1) accessor.
//   - Matrix, the read-only interface consumed by the tsp solvers.
//   - Bounds, the bounding box of a point set (diagnostics only).
//
// A Triangular over N points holds N(N-1)/2 integers, half of what a square
// matrix would need. Values are fixed at construction; there is no Set.
//
// Rounding policy: every distance is math.Round(sqrt(dx*dx + dy*dy)), i.e.
// halves round away from zero. Distances are non-negative, so this equals
// "round half up", the rule used by the reference outputs.
package matrix
