package literal

import (
	"math"
	"strconv"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{10, "10"},
		{1.25, "1.25"},
		{100, "100"},
		{0.5, "0.5"},
		{0.001, "0.001"},
		{1e-6, "0.000001"},
		{1.234e-6, "0.000001234"},
		{1e-7, "1e-7"},
		{2.5e-8, "2.5e-8"},
		{123e18, "123000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{math.Inf(1), "Infinity"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber_ParsesBack(t *testing.T) {
	for _, f := range []float64{0.1, 0.2, 0.3, 1.0 / 7, 2.0 / 3, 6.02214076e23, 1.602e-19, 4.9e-324} {
		s := formatNumber(f)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", s, err)
		}
		if got != f {
			t.Errorf("formatNumber(%v) = %q parses back as %v", f, s, got)
		}
	}
}
