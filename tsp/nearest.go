// Package tsp — nearest-neighbor construction.
//
// NearestNeighbor always starts at vertex 0 and extends the route with the
// closest unvisited vertex. The scan runs in ascending index order and only a
// strictly smaller distance replaces the current choice, so the lowest index
// wins ties and the result is fully deterministic.
//
// Complexity: O(n²) time (n steps, each scanning all vertices), O(n) space.
package tsp

import "github.com/katalvlaran/lvlath-euclid/matrix"

// NearestNeighbor builds the greedy initial route for dist.
// Order 0 yields an empty (non-nil) route and order 1 yields [0].
func NearestNeighbor(dist matrix.Matrix) ([]int, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	n := dist.Order()
	route := make([]int, 0, n)
	if n == 0 {
		return route, nil
	}

	visited := make([]bool, n)
	route = append(route, 0)
	visited[0] = true

	var (
		cur, next int
		best, d   int
		v         int
	)
	for len(route) < n {
		cur = route[len(route)-1]
		next = -1
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d = dist.At(cur, v)
			if next == -1 || d < best {
				next, best = v, d
			}
		}
		visited[next] = true
		route = append(route, next)
	}

	return route, nil
}
