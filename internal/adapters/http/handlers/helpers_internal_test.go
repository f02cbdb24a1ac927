package handlers

import (
	"math"
	"testing"
)

func TestParseLenientUint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want uint64
	}{
		{"", 0},
		{"0", 0},
		{"7", 7},
		{"  42", 42},
		{"+5", 5},
		{"12abc", 12},
		{"abc", 0},
		{"-3", 0},
		{"1.9", 1},
		{"99999999999999999999999", math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			if got := parseLenientUint(tt.raw); got != tt.want {
				t.Errorf("parseLenientUint(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
