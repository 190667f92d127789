// Package score derives the headline freedom rate, its severity tier, and
// the composite efficiency score.
package score

import (
	"math"

	"github.com/leftover-labs/freedom-rate/pkg/constants"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

// FreedomPerHour is leftover divided by monthly job hours, guarded against a
// degenerate denominator. A negative leftover yields a negative rate; the
// rate is finite for all finite inputs.
func FreedomPerHour(leftover, hoursPerMonth float64) float64 {
	leftover = mathutil.Sanitize(leftover)
	hours := mathutil.Max(constants.MinimumHoursDenominator, mathutil.Sanitize(hoursPerMonth))
	return mathutil.Round(leftover / hours)
}

// Tier classifies a freedom rate for reporting. A negative rate is a
// distinct state, not merely a low one: the user is net-losing money per
// hour worked.
type Tier string

const (
	TierUnsustainable Tier = "unsustainable"
	TierBreakeven     Tier = "breakeven"
	TierConstrained   Tier = "constrained"
	TierComfortable   Tier = "comfortable"
	TierAbundant      Tier = "abundant"
)

// Classify maps a freedom rate to its severity tier.
func Classify(freedomPerHour float64) Tier {
	switch {
	case freedomPerHour < 0:
		return TierUnsustainable
	case freedomPerHour < 1:
		return TierBreakeven
	case freedomPerHour < 5:
		return TierConstrained
	case freedomPerHour < 12:
		return TierComfortable
	default:
		return TierAbundant
	}
}

// Efficiency computes the 0-100 composite efficiency score from four
// independently normalized sub-scores. The weights sum to 100; each
// normalization clamps into [0,1] before weighting. This is a heuristic,
// not a calibrated model.
func Efficiency(freedomPerHour, leftover, net, maintenancePct, weeklyWorkHours float64) int {
	rateScore := mathutil.Clamp01(mathutil.Sanitize(freedomPerHour)/constants.FreedomRateReferenceMax) *
		constants.FreedomRateWeight

	denominator := mathutil.Max(1, mathutil.Sanitize(net))
	ratioScore := mathutil.Clamp01((mathutil.Sanitize(leftover)/denominator)/constants.LeftoverRatioReferenceMax) *
		constants.LeftoverRatioWeight

	retained := 1 - mathutil.Sanitize(maintenancePct)/100
	maintenanceScore := mathutil.Clamp01((retained-constants.MaintenanceBandFloor)/constants.MaintenanceBandWidth) *
		constants.MaintenanceWeight

	distance := math.Abs(mathutil.Sanitize(weeklyWorkHours) - constants.ReferenceWeeklyHours)
	hoursScore := mathutil.Clamp01(1-distance/constants.HoursBandHalfWidth) *
		constants.WorkedHoursWeight

	return int(math.Round(rateScore + ratioScore + maintenanceScore + hoursScore))
}

// MaintenancePct expresses maintenance spend as a percentage of net income,
// guarded against a zero denominator.
func MaintenancePct(maintenance, net float64) float64 {
	denominator := mathutil.Max(1, mathutil.Sanitize(net))
	return mathutil.Round(mathutil.CalculatePercentage(mathutil.SanitizeNonNegative(maintenance), denominator))
}
