// Package tsp — route utilities.
//
// A route is an open permutation of {0..n-1}; the closing edge is implicit.
// Provided helpers:
//   - ValidateRoute: verify the permutation invariant against an order n.
//   - CopyRoute: independent copy.
//   - RotateToStart: cyclic shift so a chosen vertex comes first.
//   - EqualRoutesModuloRotation: same cycle, same direction.
//   - reverseSegment: in-place inclusive reversal (2-opt core).
//
// No logging, no panics on user input; only sentinel errors from types.go.
package tsp

// ValidateRoute checks that route is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(route []int, n int) error {
	if len(route) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var v int
	for _, v = range route {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidRoute
		}
		seen[v] = true
	}

	return nil
}

// CopyRoute returns an independent copy of route. A nil input stays nil.
func CopyRoute(route []int) []int {
	if route == nil {
		return nil
	}
	out := make([]int, len(route))
	copy(out, route)

	return out
}

// RotateToStart shifts route in place so that start becomes route[0].
// The cycle and its direction are unchanged, and so is its length.
// Returns ErrInvalidRoute if start does not occur in route.
//
// Complexity: O(n) time, O(1) space (three reversals).
func RotateToStart(route []int, start int) error {
	pivot := -1
	for i, v := range route {
		if v == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return ErrInvalidRoute
	}
	if pivot == 0 {
		return nil
	}
	n := len(route)
	reverseSegment(route, 0, pivot-1)
	reverseSegment(route, pivot, n-1)
	reverseSegment(route, 0, n-1)

	return nil
}

// EqualRoutesModuloRotation reports whether a and b describe the same cycle
// traversed in the same direction.
//
// Complexity: O(n) time.
func EqualRoutesModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	p := -1
	for j := 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// reverseSegment reverses route[i..k] in place, both ends inclusive.
// Callers guarantee 0 ≤ i and k < len(route); i ≥ k is a no-op.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(route []int, i, k int) {
	for i < k {
		route[i], route[k] = route[k], route[i]
		i++
		k--
	}
}
