// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Accessors on valid matrices never return errors.

package matrix

import "errors"

// Every message is prefixed with "matrix: ...". Context, when needed, is added
// at the outer boundary with fmt.Errorf("ctx: %w", ErrX).

var (
	// ErrNaNInf signals a NaN or ±Inf coordinate; such a point has no
	// meaningful distance to any other point.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
