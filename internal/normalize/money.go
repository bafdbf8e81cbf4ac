package normalize

import "math"

// Round2 rounds a monetary amount to two decimal places.
// Uses math.Round to avoid truncation bias.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AmountsMatch reports whether two monetary amounts agree within tol.
func AmountsMatch(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
