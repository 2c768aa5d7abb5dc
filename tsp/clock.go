package tsp

import "time"

// Clock is the time source consulted by TwoOpt. Implementations must be
// monotonic: successive Now values never go backwards.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now. Its values carry Go's monotonic clock reading,
// so comparisons against a deadline derived from it (Add, Before) ignore
// wall-clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Deadline returns the instant budget after now on c.
func Deadline(c Clock, budget time.Duration) time.Time {
	if c == nil {
		c = SystemClock{}
	}

	return c.Now().Add(budget)
}
