package attribute

import "math"

// Tolerances used by Approximately.
const (
	relEpsilon = 1e-6
	absEpsilon = 1e-9
)

// Approximately reports whether a and b are equal within a relative tolerance
// of 1e-6, with an absolute floor of 1e-9 for values near zero.
//
// All float comparisons in the stat engine go through this function so that
// value round-trips do not mark attributes dirty.
func Approximately(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < max(relEpsilon*max(math.Abs(a), math.Abs(b)), absEpsilon)
}

// sanitize maps NaN to zero so that clamping always lands in range.
func sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
