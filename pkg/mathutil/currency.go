// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/leftover-labs/freedom-rate/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundWhole rounds a value to the nearest whole currency unit.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// Sanitize maps non-finite input to zero. The engine is a best-effort
// estimator; NaN and infinities from upstream arithmetic must never
// propagate into derived results.
func Sanitize(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// SanitizeNonNegative maps non-finite or negative input to zero.
func SanitizeNonNegative(val float64) float64 {
	v := Sanitize(val)
	if v < 0 {
		return 0
	}
	return v
}

// Clamp01 clamps a value into [0, 1].
func Clamp01(val float64) float64 {
	if math.IsNaN(val) || val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
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

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * 100
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
