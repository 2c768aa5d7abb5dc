// Package tsp_test provides helpers shared across *_test.go files in this
// package: fake clocks, a tiny dense matrix, and instance generators.
package tsp_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-euclid/matrix"
	"github.com/katalvlaran/lvlath-euclid/tsp"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	// ample is a search budget no test instance comes close to using.
	ample = time.Hour

	// seedDet seeds every random instance.
	seedDet = int64(42)
)

// epoch is the fixed origin of all fake clocks.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------
// Clocks
// -----------------------------------------------------------------------------

// frozenClock always reports the same instant.
type frozenClock struct{ at time.Time }

func (c frozenClock) Now() time.Time { return c.at }

// stepClock advances by step on every read and counts reads.
// With deadline = epoch + K*step, exactly K reads are strictly before it.
type stepClock struct {
	step  time.Duration
	reads int
}

func (c *stepClock) Now() time.Time {
	t := epoch.Add(time.Duration(c.reads) * c.step)
	c.reads++

	return t
}

// ampleOpts returns Options on a frozen clock with a deadline an hour away.
func ampleOpts() (tsp.Options, time.Time) {
	opts := tsp.DefaultOptions()
	opts.Clock = frozenClock{at: epoch}

	return opts, epoch.Add(ample)
}

// -----------------------------------------------------------------------------
// Matrices and instances
// -----------------------------------------------------------------------------

// testDense is an explicit square matrix, used to pin exact weights.
type testDense struct{ a [][]int }

var _ matrix.Matrix = testDense{}

func (m testDense) Order() int { return len(m.a) }
func (m testDense) At(i, j int) int { return m.a[i][j] }

// euclid builds the packed Euclidean matrix or fails the test.
func euclid(t testing.TB, pts []geom.Coord) *matrix.Triangular {
	t.Helper()
	m, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)

	return m
}

// randomPoints returns n points in [0, 1000)², deterministic for a seed.
func randomPoints(n int, seed int64) []geom.Coord {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Coord, n)
	for i := range pts {
		pts[i] = geom.Coord{X: r.Float64() * 1000, Y: r.Float64() * 1000}
	}

	return pts
}

// square10 is the 10×10 square; the perimeter (length 40) is optimal.
func square10() []geom.Coord {
	return []geom.Coord{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requirePermutation fails unless route is a permutation of {0..n-1}.
func requirePermutation(t testing.TB, route []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateRoute(route, n), "route %v", route)
}

// requireLocalOptimum fails if any 2-opt move on route still has positive gain.
func requireLocalOptimum(t testing.TB, m matrix.Matrix, route []int) {
	t.Helper()
	n := len(route)
	for i := 0; i < n-1; i++ {
		a := route[(i-1+n)%n]
		b := route[i]
		for k := i + 1; k < n; k++ {
			if i == 0 && k == n-1 {
				continue
			}
			c := route[k]
			d := route[(k+1)%n]
			gain := m.At(a, b) + m.At(c, d) - m.At(a, c) - m.At(b, d)
			require.LessOrEqual(t, gain, 0, "improving move (%d,%d) left in %v", i, k, route)
		}
	}
}
