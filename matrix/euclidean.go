// SPDX-License-Identifier: MIT
// Package matrix — packed lower-triangular Euclidean distances.
//
// Layout: the distance between i and j (i > j) lives at d[i*(i-1)/2 + j].
// Row i therefore starts right after the i*(i-1)/2 cells of rows 1..i-1,
// and row 0 has no cells at all. The diagonal is implicit and always zero.
//
// Determinism & Policy:
//   - Fixed i-then-j fill order; one sqrt and one rounding per pair.
//   - Values never change after NewEuclidean returns.
//
// Complexity: O(N²) time and N(N-1)/2 ints of space for construction;
// O(1) per lookup.

package matrix

import (
	"math"

	"github.com/jbeda/geom"
)

// Matrix is a read-only, symmetric, integer distance matrix over vertices
// 0..Order()-1. At must return the same value for (i, j) and (j, i) and
// zero on the diagonal.
type Matrix interface {
	// Order returns the number of vertices.
	Order() int

	// At returns the distance between vertices i and j.
	// Indices outside [0, Order()) are a programmer error.
	At(i, j int) int
}

// Triangular is the packed lower-triangle implementation of Matrix.
type Triangular struct {
	n int
	d []int
}

var _ Matrix = (*Triangular)(nil)

// NewEuclidean computes the rounded Euclidean distance for every pair of
// points. For fewer than two points the result is a valid Matrix with no
// stored cells.
//
// Returns ErrNaNInf if any coordinate is not finite.
func NewEuclidean(points []geom.Coord) (*Triangular, error) {
	n := len(points)
	for i := 0; i < n; i++ {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return nil, ErrNaNInf
		}
	}

	t := &Triangular{n: n, d: make([]int, cells(n))}

	var (
		i, j int
		row  int // offset of row i inside t.d
	)
	for i = 1; i < n; i++ {
		row = cells(i)
		for j = 0; j < i; j++ {
			t.d[row+j] = Distance(points[i], points[j])
		}
	}

	return t, nil
}

// Distance returns round(sqrt(dx² + dy²)) between a and b.
// Halves round away from zero (math.Round).
func Distance(a, b geom.Coord) int {
	v := a.Minus(b)

	return int(math.Round(math.Sqrt(v.X*v.X + v.Y*v.Y)))
}

// Order returns the number of points the matrix was built from.
func (t *Triangular) Order() int { return t.n }

// At returns the distance between i and j regardless of argument order.
// The larger index selects the row.
func (t *Triangular) At(i, j int) int {
	if i == j {
		return 0
	}
	if j > i {
		i, j = j, i
	}

	return t.d[cells(i)+j]
}

// cells returns the number of stored cells for an order-n triangle,
// which is also the offset of row n.
func cells(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
