// Package money provides common monetary utility functions.
package money

import (
	"math"

	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value half-up to two decimals, i.e. to represent real
// currency. All monetary results produced by the engine pass through here.
func Round(val float64) float64 {
	return decimal.NewFromFloat(val).Round(2).InexactFloat64()
}

// NonNegative rounds a value to two decimals and clamps it at zero.
func NonNegative(val float64) float64 {
	return Max(Round(val), 0)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
