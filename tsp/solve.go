// Package tsp - end-to-end pipeline from points to an improved route.
//
// Solve runs, in order:
//  1. matrix.NewEuclidean: rounded pairwise distances.
//  2. NearestNeighbor: greedy route from vertex 0.
//  3. TwoOpt: first-improvement search until convergence or deadline.
//  4. RotateToStart: the reported route begins at vertex 0 again, since
//     moves touching position 0 may have shifted it.
//
// The construction stage always runs, even when the deadline has already
// passed; the search stage then returns the greedy route unchanged.
package tsp

import (
	"time"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/lvlath-euclid/matrix"
)

// Solve computes a tour over points that is no longer than the
// nearest-neighbor tour, stopping the search at deadline.
//
// Errors: matrix.ErrNaNInf for non-finite coordinates, ErrNegativeOption for
// invalid options. Empty and single-point inputs succeed with length 0.
func Solve(points []geom.Coord, deadline time.Time, opts Options) (Result, error) {
	if opts.MaxMoves < 0 {
		return Result{}, ErrNegativeOption
	}

	dist, err := matrix.NewEuclidean(points)
	if err != nil {
		return Result{}, err
	}

	return SolveWithMatrix(dist, deadline, opts)
}

// SolveWithMatrix is Solve for a prebuilt distance matrix.
func SolveWithMatrix(dist matrix.Matrix, deadline time.Time, opts Options) (Result, error) {
	route, err := NearestNeighbor(dist)
	if err != nil {
		return Result{}, err
	}
	initial := cycleLength(dist, route)

	st, err := TwoOpt(dist, route, deadline, opts)
	if err != nil {
		return Result{}, err
	}
	if len(route) > 0 {
		if err = RotateToStart(route, 0); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Route:         route,
		Length:        st.Length,
		InitialLength: initial,
		Moves:         st.Moves,
		Passes:        st.Passes,
		Status:        st.Status,
	}, nil
}
