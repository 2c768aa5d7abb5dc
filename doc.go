// Package lvlath is the root of a small Euclidean TSP toolkit: give it N
// points in the plane and a time budget, get back a short closed tour.
//
// What is inside?
//
//	• matrix/          — packed, integer-rounded Euclidean distance matrix
//	• tsp/             — nearest-neighbor construction + time-bounded 2-opt
//	• internal/cli/    — the lvlath-tsp command (input, report, logging)
//	• cmd/lvlath-tsp/  — process entry point
//
// Pipeline:
//
//	points ──► matrix.NewEuclidean ──► tsp.NearestNeighbor ──► tsp.TwoOpt ──► route, length
//
// The search is single-threaded and deterministic for a given clock: the
// same input and the same number of deadline checks always produce the same
// route. The result is never longer than the nearest-neighbor tour.
//
// Quick example:
//
//	$ printf '4\n0 0\n0 10\n10 10\n10 0\n' | lvlath-tsp benchmark
//	40
package lvlath
