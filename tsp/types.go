package tsp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilMatrix indicates that a nil distance matrix was passed.
	ErrNilMatrix = errors.New("tsp: distance matrix is nil")

	// ErrDimensionMismatch indicates that a route length differs from the
	// matrix order.
	ErrDimensionMismatch = errors.New("tsp: route length does not match matrix order")

	// ErrInvalidRoute indicates that a route is not a permutation of
	// {0..n-1} (out-of-range or repeated vertex).
	ErrInvalidRoute = errors.New("tsp: route is not a permutation")

	// ErrNegativeOption indicates that a numeric option was negative.
	ErrNegativeOption = errors.New("tsp: option must be non-negative")
)

// DefaultTimeLimit is the search budget used by the command line tool,
// measured from the moment it starts.
const DefaultTimeLimit = 1500 * time.Millisecond

// Status tells why TwoOpt stopped. Every status is a normal outcome.
type Status int

const (
	// StatusConverged means a full scan found no improving move.
	StatusConverged Status = iota

	// StatusTimedOut means the deadline was reached during a scan.
	StatusTimedOut

	// StatusMoveLimit means Options.MaxMoves improving moves were applied.
	StatusMoveLimit
)

// String returns a short lowercase name, suitable for logs.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusTimedOut:
		return "timed out"
	case StatusMoveLimit:
		return "move limit"
	default:
		return "unknown"
	}
}

// Options configures TwoOpt and Solve.
//
// MaxMoves – stop after this many accepted moves; 0 means unlimited.
// Clock    – time source for deadline checks; nil means SystemClock.
type Options struct {
	MaxMoves int
	Clock    Clock
}

// DefaultOptions returns Options with no move cap and the system clock.
func DefaultOptions() Options {
	return Options{
		MaxMoves: 0,
		Clock:    SystemClock{},
	}
}

// clock returns the configured clock, falling back to SystemClock.
func (o Options) clock() Clock {
	if o.Clock == nil {
		return SystemClock{}
	}

	return o.Clock
}

// Stats reports the outcome of a TwoOpt run.
type Stats struct {
	// Length is the tour length after the last accepted move.
	Length int

	// Moves is the number of improving moves applied.
	Moves int

	// Passes is the number of scans started (each accepted move restarts one).
	Passes int

	// Status is the terminal state of the search.
	Status Status
}

// Result holds the outcome of Solve.
type Result struct {
	// Route visits every vertex once and starts at vertex 0 (when n > 0).
	Route []int

	// Length is the total cyclic length of Route, wrap edge included.
	Length int

	// InitialLength is the length of the nearest-neighbor tour.
	InitialLength int

	// Moves, Passes and Status are copied from the TwoOpt run.
	Moves  int
	Passes int
	Status Status
}
