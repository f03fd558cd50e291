package tui

import (
	"fmt"
	"math"
)

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatQty renders a quantity without trailing zeros ("3", "2.5")
func formatQty(q float64) string {
	if q == math.Trunc(q) && !math.IsInf(q, 0) {
		return fmt.Sprintf("%.0f", q)
	}
	return fmt.Sprintf("%g", q)
}
