package money

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "No rounding needed", input: 100.25, expected: 100.25},
		{name: "Round down", input: 100.254, expected: 100.25},
		{name: "Round half up", input: 100.255, expected: 100.26},
		{name: "Negative round half up", input: -100.255, expected: -100.26},
		{name: "Machine epsilon artifact", input: 0.1 + 0.2, expected: 0.3},
		{name: "Large amount", input: 1_344_000.004, expected: 1_344_000.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Positive passes through", input: 12.345, expected: 12.35},
		{name: "Zero stays zero", input: 0, expected: 0},
		{name: "Negative clamps to zero", input: -0.02, expected: 0},
		{name: "Tiny negative rounding residue", input: -0.001, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NonNegative(tt.input)
			if result != tt.expected {
				t.Errorf("NonNegative(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.00, 100.009, 0.01) {
		t.Errorf("expected 100.00 and 100.009 to be within a cent")
	}
	if WithinTolerance(100.00, 100.02, 0.01) {
		t.Errorf("expected 100.00 and 100.02 to differ by more than a cent")
	}
}

func TestMinMax(t *testing.T) {
	if Min(1.5, 2.5) != 1.5 {
		t.Errorf("Min(1.5, 2.5) != 1.5")
	}
	if Max(1.5, 2.5) != 2.5 {
		t.Errorf("Max(1.5, 2.5) != 2.5")
	}
}
