package service

import (
	"fmt"
	"math"

	"github.com/meera/gstbill/internal/domain"
)

// ComputeTotals derives the verified numeric summary for a set of line items:
//
//	subtotal       = sum of rate x quantity per line
//	taxAmount      = subtotal x taxRatePercent / 100
//	grandTotal     = subtotal + taxAmount rounded to 2 decimals
//	roundOff       = signed correction between raw and rounded total
//	runningBalance = previousBalance + grandTotal
//
// Rounding is half away from zero (math.Round); the renderer formats with
// the same rule so the stored and displayed totals can never differ.
//
// The function never panics on malformed input. A non-finite rate or
// quantity contributes 0 to the subtotal; one bad row does not corrupt the
// whole summary. If the computation still ends up non-finite, a zeroed
// summary carrying the previous balance is returned together with a non-nil
// error so the caller can report the fault while displaying a safe default.
func ComputeTotals(items []domain.LineItem, taxRatePercent, previousBalance float64) (summary domain.TotalsSummary, err error) {
	if !isFinite(previousBalance) {
		previousBalance = 0
	}

	defer func() {
		if r := recover(); r != nil {
			summary = fallbackSummary(previousBalance)
			err = fmt.Errorf("totals computation failed: %v", r)
		}
	}()

	if !isFinite(taxRatePercent) {
		taxRatePercent = 0
	}

	var subtotal float64
	for _, item := range items {
		amount := item.Amount()
		if !isFinite(amount) {
			amount = 0
		}
		subtotal += amount
	}

	taxAmount := subtotal * taxRatePercent / 100
	raw := subtotal + taxAmount
	grandTotal := round2(raw)
	roundOff := grandTotal - raw

	summary = domain.TotalsSummary{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		RoundOff:       roundOff,
		GrandTotal:     grandTotal,
		RunningBalance: previousBalance + grandTotal,
	}

	if !isFinite(summary.Subtotal) || !isFinite(summary.TaxAmount) ||
		!isFinite(summary.GrandTotal) || !isFinite(summary.RunningBalance) {
		return fallbackSummary(previousBalance), fmt.Errorf("totals computation overflowed to a non-finite value")
	}

	return summary, nil
}

// fallbackSummary is the safe default shown in place of a failed computation.
func fallbackSummary(previousBalance float64) domain.TotalsSummary {
	return domain.TotalsSummary{RunningBalance: previousBalance}
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
