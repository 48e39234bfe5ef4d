package types

import "math"

// RoundHalfUp rounds to the nearest integer with halves going towards
// positive infinity, so 2.5 becomes 3 and -2.5 becomes -2.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
