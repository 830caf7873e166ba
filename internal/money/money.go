// Package money holds the one numeric guard every monetary
// computation goes through. Reference datasets are messy; totals must
// never carry NaN, infinity, or negative amounts.
package money

import "math"

// SafeNum coerces a monetary value to a usable number: NaN, ±Inf and
// negatives all become 0, everything else passes through unchanged.
func SafeNum(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Round2 rounds to two decimals for presentation in quotes.
func Round2(v float64) float64 {
	return math.Round(SafeNum(v)*100) / 100
}
