// Package timemodel converts weekly work hours and daily commute minutes
// into the monthly job-hours denominator for rate calculations.
package timemodel

import (
	"math"

	"github.com/leftover-labs/freedom-rate/pkg/constants"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

// JobHours describes one month of job-bound time.
type JobHours struct {
	WeeklyWorkHours    float64
	WeeklyCommuteHours float64
	MonthlyHours       float64

	// CommuteDominant is an advisory flag set when weekly commute hours
	// exceed the declared work hours. It never blocks computation.
	CommuteDominant bool
}

// Compute derives the monthly job hours. Commute time is zeroed only when
// commuteTimeFree is true (fully remote work); cost-free modes such as
// walking still spend the commute minutes. officeDaysPerWeek <= 0 falls back
// to the default five-day pattern.
func Compute(weeklyWorkHours, dailyCommuteMinutes float64, commuteTimeFree bool, officeDaysPerWeek float64) JobHours {
	weeklyWorkHours = mathutil.SanitizeNonNegative(weeklyWorkHours)
	dailyCommuteMinutes = mathutil.SanitizeNonNegative(dailyCommuteMinutes)
	if officeDaysPerWeek <= 0 || math.IsNaN(officeDaysPerWeek) {
		officeDaysPerWeek = constants.DefaultOfficeDaysPerWeek
	}

	weeklyCommuteHours := dailyCommuteMinutes * officeDaysPerWeek / 60
	if commuteTimeFree {
		weeklyCommuteHours = 0
	}

	weeklyTotal := weeklyWorkHours + weeklyCommuteHours

	return JobHours{
		WeeklyWorkHours:    weeklyWorkHours,
		WeeklyCommuteHours: weeklyCommuteHours,
		MonthlyHours:       math.Round(weeklyTotal * constants.WeeksPerMonth),
		CommuteDominant:    weeklyCommuteHours > weeklyWorkHours,
	}
}

// CommuteHoursSavedPerMonth computes the monthly commute hours a relocation
// would recover, assuming the standard workday count. Negative savings are
// clamped to zero; a longer target commute saves nothing.
func CommuteHoursSavedPerMonth(currentDailyMinutes, targetDailyMinutes float64) float64 {
	currentDailyMinutes = mathutil.SanitizeNonNegative(currentDailyMinutes)
	targetDailyMinutes = mathutil.SanitizeNonNegative(targetDailyMinutes)
	saved := currentDailyMinutes - targetDailyMinutes
	if saved < 0 {
		saved = 0
	}
	return mathutil.Round(saved * constants.RelocationWorkdaysPerMonth / 60)
}
