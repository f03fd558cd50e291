package service

import "testing"

func TestLenientFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"2.5", 2.5},
		{"-2", -2},
		{"10 Nos", 10},
		{"1,234.5", 1234.5},
		{"  7  ", 7},
		{"abc", 0},
		{"", 0},
		{"...", 0},
		{"qty: 12", 12},
	}

	for _, tc := range cases {
		if got := LenientFloat(tc.in); got != tc.want {
			t.Errorf("LenientFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComputeTotalQuantity(t *testing.T) {
	got := ComputeTotalQuantity([]string{"2", "3 Nos", "junk", "1.5"})
	if got != 6.5 {
		t.Fatalf("expected total quantity 6.5, got %v", got)
	}

	if got := ComputeTotalQuantity(nil); got != 0 {
		t.Fatalf("expected 0 for no quantities, got %v", got)
	}
}
