// Package tax provides the net income estimation models. Both models are
// acknowledged rough approximations; their constants are reproduced exactly
// for compatibility rather than tax-law fidelity.
package tax

import (
	"github.com/leftover-labs/freedom-rate/pkg/constants"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

// EstimateNetMonthly converts a monthly income figure to net using the flat
// effective-rate model. If the caller already supplies net income the amount
// passes through unchanged. Non-finite or non-positive input yields zero.
func EstimateNetMonthly(effectiveRate, amount float64, isGross bool) float64 {
	amount = mathutil.SanitizeNonNegative(amount)
	if amount == 0 {
		return 0
	}
	if !isGross {
		return amount
	}
	if effectiveRate <= 0 {
		effectiveRate = constants.DefaultEffectiveNetRate
	}
	return mathutil.Round(amount * effectiveRate)
}

// Band is one marginal band of the progressive schedule.
type Band struct {
	Width float64 // taxable width; the final band has no upper bound
	Rate  float64
}

// BracketSchedule returns the progressive schedule applied by the annual
// salary estimator: a zero-rate allowance, then successive marginal bands.
func BracketSchedule() []Band {
	return []Band{
		{Width: constants.BracketBasicWidth, Rate: constants.BracketBasicRate},
		{Width: constants.BracketHigherWidth, Rate: constants.BracketHigherRate},
		{Width: 0, Rate: constants.BracketTopRate},
	}
}

// EstimateAnnualNet applies the bracket model to a gross annual salary and
// returns the net annual figure: gross minus the progressive tax minus a
// flat secondary contribution on income above the allowance, floored at
// zero. Non-finite or non-positive input yields zero.
func EstimateAnnualNet(grossAnnual float64) float64 {
	grossAnnual = mathutil.SanitizeNonNegative(grossAnnual)
	if grossAnnual == 0 {
		return 0
	}

	taxable := grossAnnual - constants.BracketAllowance
	if taxable < 0 {
		taxable = 0
	}

	totalTax := 0.0
	remaining := taxable
	for _, band := range BracketSchedule() {
		if remaining <= 0 {
			break
		}
		width := remaining
		if band.Width > 0 && band.Width < remaining {
			width = band.Width
		}
		totalTax += width * band.Rate
		remaining -= width
	}

	secondary := taxable * constants.SecondaryContributionRate

	net := grossAnnual - totalTax - secondary
	if net < 0 {
		net = 0
	}
	return mathutil.Round(net)
}

// EstimateAnnualNetMonthly is the monthly view of EstimateAnnualNet.
func EstimateAnnualNetMonthly(grossAnnual float64) float64 {
	return mathutil.Round(EstimateAnnualNet(grossAnnual) / constants.MonthsPerYear)
}
