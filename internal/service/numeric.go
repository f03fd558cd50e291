package service

import (
	"math"
	"strconv"
	"strings"
)

// LenientFloat parses a quantity string the way a forgiving form field would:
// everything except digits, '.', and '-' is stripped before parsing, and an
// unparsable remainder yields 0. "10 Nos" parses as 10, "abc" as 0.
func LenientFloat(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ComputeTotalQuantity sums leniently parsed quantity strings. It feeds the
// display-only quantity aggregate and is independent of the monetary totals.
func ComputeTotalQuantity(quantities []string) float64 {
	var total float64
	for _, q := range quantities {
		total += LenientFloat(q)
	}
	return total
}
