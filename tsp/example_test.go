package tsp_test

import (
	"fmt"
	"time"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/lvlath-euclid/matrix"
	"github.com/katalvlaran/lvlath-euclid/tsp"
)

// ExampleSolve builds a greedy tour over six points and lets 2-opt remove
// its crossings within a 1.5 s budget.
func ExampleSolve() {
	pts := []geom.Coord{
		{X: 20, Y: 4}, {X: 1, Y: 20}, {X: 20, Y: 10},
		{X: 14, Y: 11}, {X: 11, Y: 19}, {X: 8, Y: 15},
	}
	opts := tsp.DefaultOptions()
	deadline := tsp.Deadline(opts.Clock, tsp.DefaultTimeLimit)

	res, err := tsp.Solve(pts, deadline, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("route:", res.Route)
	fmt.Println("nearest neighbor:", res.InitialLength)
	fmt.Println("after 2-opt:", res.Length, res.Status)
	// Output:
	// route: [0 2 4 1 5 3]
	// nearest neighbor: 59
	// after 2-opt: 54 converged
}

// ExampleTwoOpt uncrosses a square visited along both diagonals.
func ExampleTwoOpt() {
	m, _ := matrix.NewEuclidean([]geom.Coord{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}})
	route := []int{0, 2, 1, 3}

	st, err := tsp.TwoOpt(m, route, time.Now().Add(time.Second), tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(route, st.Length, st.Moves)
	// Output:
	// [0 1 2 3] 40 1
}
