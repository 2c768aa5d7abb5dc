// Package tsp - time-bounded 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a cyclic route.
// A move (i, k), 0 ≤ i < k ≤ n−1, reverses the positions i..k inclusive.
// With a = route[i−1] (route[n−1] when i = 0), b = route[i], c = route[k] and
// d = route[k+1] (route[0] when k = n−1), it swaps edges (a,b),(c,d) for
// (a,c),(b,d):
//
//	gain = w(a,b) + w(c,d) − w(a,c) − w(b,d)
//
// Edges inside the reversed segment are unchanged on a symmetric matrix.
// Only gain > 0 is accepted.
//
// Design:
//   - Scan order is i ascending from 0, then k ascending from i+1. The first
//     improving move is applied and the scan restarts at i = 0.
//   - The pair (0, n−1) reverses the whole route, which is the same cycle;
//     it is skipped.
//   - The running length is decremented by each gain; it is never recomputed.
//   - The clock is read once per candidate pair, before its weights, so a
//     scan overruns the deadline by at most one comparison.
//
// Complexity:
//   - One pass: O(n²) candidate checks.
//   - Each accepted move: O(k−i) for the reversal, O(1) bookkeeping.
package tsp

import (
	"time"

	"github.com/katalvlaran/lvlath-euclid/matrix"
)

// TwoOpt improves route in place until no improving move remains, the
// deadline passes, or opts.MaxMoves moves have been applied. The route must be
// a permutation of {0..dist.Order()-1}; it is owned by TwoOpt until it returns.
//
// A deadline that has already passed leaves route untouched. Routes of three
// or fewer vertices admit no improving move and return StatusConverged at once.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidRoute, ErrNegativeOption.
// Reaching a terminal state is never an error.
func TwoOpt(dist matrix.Matrix, route []int, deadline time.Time, opts Options) (Stats, error) {
	if dist == nil {
		return Stats{}, ErrNilMatrix
	}
	if opts.MaxMoves < 0 {
		return Stats{}, ErrNegativeOption
	}
	if err := ValidateRoute(route, dist.Order()); err != nil {
		return Stats{}, err
	}

	n := len(route)
	st := Stats{Length: cycleLength(dist, route), Status: StatusConverged}
	if n <= 3 {
		return st, nil
	}

	clk := opts.clock()
	last := n - 1

	var (
		i, k       int
		a, b, c, d int
		gain       int
	)
	for {
		st.Passes++
		improved := false

	scan:
		for i = 0; i < last; i++ {
			if i == 0 {
				a = route[last]
			} else {
				a = route[i-1]
			}
			b = route[i]

			for k = i + 1; k <= last; k++ {
				if !clk.Now().Before(deadline) {
					st.Status = StatusTimedOut

					return st, nil
				}
				if i == 0 && k == last {
					continue // whole-route reversal: same cycle
				}

				c = route[k]
				if k == last {
					d = route[0]
				} else {
					d = route[k+1]
				}

				gain = dist.At(a, b) + dist.At(c, d) - dist.At(a, c) - dist.At(b, d)
				if gain <= 0 {
					continue
				}

				reverseSegment(route, i, k)
				st.Length -= gain
				st.Moves++
				improved = true

				break scan
			}
		}

		if !improved {
			return st, nil
		}
		if opts.MaxMoves > 0 && st.Moves >= opts.MaxMoves {
			st.Status = StatusMoveLimit

			return st, nil
		}
	}
}
