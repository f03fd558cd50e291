package render

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rs. 0.00"},
		{5, "Rs. 5.00"},
		{1234.5, "Rs. 1,234.50"},
		{1234567.891, "Rs. 1,234,567.89"},
		{-10, "-Rs. 10.00"},
		{-1234.5, "-Rs. 1,234.50"},
		{math.NaN(), "Rs. 0.00"},
		{math.Inf(1), "Rs. 0.00"},
	}

	for _, tc := range cases {
		if got := FormatMoney("Rs.", tc.amount); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatMoneyOtherPrefix(t *testing.T) {
	if got := FormatMoney("$", 99.9); got != "$ 99.90" {
		t.Fatalf("unexpected result %q", got)
	}
}
