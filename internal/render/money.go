package render

import (
	"fmt"
	"math"
)

// FormatMoney formats a currency figure to exactly 2 decimal places with
// comma grouping and the given symbol prefix, e.g. "Rs. 1,234.50". Negative
// values carry the sign before the symbol. This is purely presentational:
// the value has already been rounded by the calculator and %.2f of a
// 2-decimal value cannot shift it.
func FormatMoney(prefix string, amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)

	dotPos := len(s) - 3
	intPart := s[:dotPos]
	decPart := s[dotPos:]

	grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, byte(c))
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + prefix + " " + string(grouped) + decPart
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
