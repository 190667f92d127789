// Package costs aggregates a user's monthly outgoings into the derived
// breakdown that leftover and freedom-rate calculations consume.
package costs

import (
	"github.com/leftover-labs/freedom-rate/internal/refdata"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

// HealthPlan enumerates the healthcare plan choices modeled for the US
// region.
type HealthPlan string

const (
	PlanEmployer    HealthPlan = "employer"
	PlanMarketplace HealthPlan = "marketplace"
	PlanNone        HealthPlan = "none"
)

// OverridableAmount models a field that auto-populates from reference
// benchmarks until the user edits it directly. Touched distinguishes an
// explicit user value from the auto-derived state; once set, benchmark
// recomputation stops.
type OverridableAmount struct {
	Value   float64 `mapstructure:"value" yaml:"value" json:"value"`
	Touched bool    `mapstructure:"touched" yaml:"touched" json:"touched"`
}

// Input is one person's month: every figure the derivation engine needs,
// treated as an immutable value. Callers construct successive versions as
// sliders change; nothing in the engine mutates it.
type Input struct {
	IncomeIsGross      bool    `mapstructure:"incomeIsGross" json:"incomeIsGross"`
	IncomeMonthly      float64 `mapstructure:"incomeMonthly" json:"incomeMonthly"`
	OtherIncomeMonthly float64 `mapstructure:"otherIncomeMonthly" json:"otherIncomeMonthly"`

	Region     string             `mapstructure:"region" json:"region"`
	City       string             `mapstructure:"city" json:"city,omitempty"`
	Urbanicity refdata.Urbanicity `mapstructure:"urbanicity" json:"urbanicity"`

	Household    refdata.HouseholdType `mapstructure:"household" json:"household"`
	ChildCount   int                   `mapstructure:"childCount" json:"childCount"`
	ChildAgeBand refdata.ChildAgeBand  `mapstructure:"childAgeBand" json:"childAgeBand,omitempty"`

	Housing                OverridableAmount `mapstructure:"housing" json:"housing"`
	BillsIncludedInHousing bool              `mapstructure:"billsIncludedInHousing" json:"billsIncludedInHousing"`

	WeeklyWorkHours     float64                `mapstructure:"weeklyWorkHours" json:"weeklyWorkHours"`
	OfficeDaysPerWeek   float64                `mapstructure:"officeDaysPerWeek" json:"officeDaysPerWeek"`
	TransportMode       refdata.TransportMode  `mapstructure:"transportMode" json:"transportMode"`
	DailyCommuteMinutes float64                `mapstructure:"dailyCommuteMinutes" json:"dailyCommuteMinutes"`
	CommuteContext      refdata.CommuteContext `mapstructure:"commuteContext" json:"commuteContext"`
	CommuteCostOverride OverridableAmount      `mapstructure:"commuteCostOverride" json:"commuteCostOverride"`

	DebtMonthly        float64 `mapstructure:"debtMonthly" json:"debtMonthly"`
	StudentLoanMonthly float64 `mapstructure:"studentLoanMonthly" json:"studentLoanMonthly"`
	SavingsRatePct     float64 `mapstructure:"savingsRatePct" json:"savingsRatePct"`

	Drivers        map[refdata.LifestyleDriver]float64 `mapstructure:"drivers" json:"drivers"`
	VariableSpends map[refdata.VariableSpend]float64   `mapstructure:"variableSpends" json:"variableSpends"`

	// WFHUpliftMonthly is the work-from-home utility uplift applied in
	// place of commute cost when transport mode is remote.
	WFHUpliftMonthly float64 `mapstructure:"wfhUpliftMonthly" json:"wfhUpliftMonthly"`

	HealthPlan     HealthPlan `mapstructure:"healthPlan" json:"healthPlan,omitempty"`
	HealthOverride float64    `mapstructure:"healthOverride" json:"healthOverride"`
}

// EffectiveChildCount forces the child count to zero for household types
// where child fields are not meaningful.
func (in Input) EffectiveChildCount() int {
	if !in.Household.Parenting() || in.ChildCount < 0 {
		return 0
	}
	return in.ChildCount
}

// DriverValue returns the clamped slider position for one lifestyle driver.
func (in Input) DriverValue(driver refdata.LifestyleDriver) float64 {
	return refdata.ClampSlider(mathutil.Sanitize(in.Drivers[driver]), driver.Bounds())
}

// SpendValue returns the clamped slider position for one variable spend.
func (in Input) SpendValue(spend refdata.VariableSpend) float64 {
	return refdata.ClampSlider(mathutil.Sanitize(in.VariableSpends[spend]), spend.Bounds())
}
