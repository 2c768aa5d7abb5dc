// Package tsp — cost utilities shared by the construction and search stages.
//
// TourLength sums a cyclic route on an integer matrix. It validates the
// route once and then reads exactly n matrix cells.
//
// Complexity:
//   - O(n) time, O(n) extra space for the permutation check.
package tsp

import "github.com/katalvlaran/lvlath-euclid/matrix"

// TourLength returns the length of route as a cycle: the sum of
// dist(route[i], route[i+1]) for i in [0, n-2] plus the closing edge
// dist(route[n-1], route[0]). Routes of zero or one vertex have length 0.
//
// Returns ErrNilMatrix, ErrDimensionMismatch or ErrInvalidRoute.
func TourLength(dist matrix.Matrix, route []int) (int, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	if err := ValidateRoute(route, dist.Order()); err != nil {
		return 0, err
	}

	return cycleLength(dist, route), nil
}

// cycleLength is TourLength without validation.
func cycleLength(dist matrix.Matrix, route []int) int {
	n := len(route)
	if n < 2 {
		return 0
	}
	sum := dist.At(route[n-1], route[0])
	for i := 0; i < n-1; i++ {
		sum += dist.At(route[i], route[i+1])
	}

	return sum
}
