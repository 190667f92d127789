// Package scenario runs the derivation pipeline under alternate parameter
// sets and computes deltas between the named scenarios.
package scenario

import (
	"go.uber.org/zap"

	"github.com/leftover-labs/freedom-rate/internal/refdata"
	"github.com/leftover-labs/freedom-rate/pkg/costs"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
	"github.com/leftover-labs/freedom-rate/pkg/score"
	"github.com/leftover-labs/freedom-rate/pkg/tax"
	"github.com/leftover-labs/freedom-rate/pkg/timemodel"
)

// Result is the full derived output of one scenario run. Every scenario
// computes its own leftover and freedom rate independently; results are
// snapshots with no live ties back to the input.
type Result struct {
	Name string `json:"name"`

	costs.Breakdown

	WeeklyCommuteHours float64 `json:"weeklyCommuteHours"`
	HoursPerMonth      float64 `json:"hoursPerMonth"`

	FreedomPerHour float64    `json:"freedomPerHour"`
	Tier           score.Tier `json:"tier"`
	MaintenancePct float64    `json:"maintenancePct"`
	Efficiency     int        `json:"efficiency"`

	// CommuteHoursSavedPerMonth is populated only by relocation runs.
	CommuteHoursSavedPerMonth float64 `json:"commuteHoursSavedPerMonth,omitempty"`

	// Warnings are advisory only and never block computation.
	Warnings []string `json:"warnings,omitempty"`
}

// Delta is the difference between two scenario results, to minus from.
type Delta struct {
	Leftover       float64 `json:"leftover"`
	FreedomPerHour float64 `json:"freedomPerHour"`
}

// Engine computes scenarios against an immutable reference catalog. It
// holds no mutable state; concurrent use is safe.
type Engine struct {
	catalog    *refdata.Catalog
	aggregator *costs.Aggregator
	logger     *zap.Logger
}

// NewEngine creates a scenario engine. A nil logger is replaced by a no-op
// logger.
func NewEngine(catalog *refdata.Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = refdata.NewCatalog()
	}
	return &Engine{
		catalog:    catalog,
		aggregator: costs.NewAggregator(logger),
		logger:     logger,
	}
}

// Catalog exposes the engine's reference catalog to presentation layers.
func (e *Engine) Catalog() *refdata.Catalog {
	return e.catalog
}

// EstimateNet converts a monthly income figure to net using the flat
// per-region effective rate. Already-net amounts pass through unchanged.
func (e *Engine) EstimateNet(regionID string, amount float64, isGross bool) float64 {
	region := e.catalog.LookupRegion(regionID)
	return tax.EstimateNetMonthly(region.EffectiveNetRate, amount, isGross)
}

// EstimateAnnualNet applies the progressive bracket model used by the
// annual salary estimator and returns the net annual figure.
func (e *Engine) EstimateAnnualNet(grossAnnual float64) float64 {
	return tax.EstimateAnnualNet(grossAnnual)
}

// Compute runs the full pipeline over the user's exact current inputs.
func (e *Engine) Compute(in costs.Input, city refdata.CityProfile) Result {
	return e.compute("current", in, city)
}

func (e *Engine) compute(name string, in costs.Input, city refdata.CityProfile) Result {
	region := e.catalog.LookupRegion(in.Region)

	net := e.EstimateNet(in.Region, in.IncomeMonthly, in.IncomeIsGross) +
		mathutil.SanitizeNonNegative(in.OtherIncomeMonthly)

	breakdown := e.aggregator.Aggregate(in, region, net)
	hours := timemodel.Compute(in.WeeklyWorkHours, in.DailyCommuteMinutes,
		in.TransportMode.TimeFree(), in.OfficeDaysPerWeek)

	return e.finish(name, in, breakdown, hours)
}

func (e *Engine) finish(name string, in costs.Input, breakdown costs.Breakdown, hours timemodel.JobHours) Result {
	rate := score.FreedomPerHour(breakdown.Leftover, hours.MonthlyHours)
	maintenancePct := score.MaintenancePct(breakdown.Maintenance, breakdown.Net)

	result := Result{
		Name:               name,
		Breakdown:          breakdown,
		WeeklyCommuteHours: hours.WeeklyCommuteHours,
		HoursPerMonth:      hours.MonthlyHours,
		FreedomPerHour:     rate,
		Tier:               score.Classify(rate),
		MaintenancePct:     maintenancePct,
		Efficiency: score.Efficiency(rate, breakdown.Leftover, breakdown.Net,
			maintenancePct, hours.WeeklyWorkHours),
	}

	if hours.CommuteDominant {
		result.Warnings = append(result.Warnings,
			"weekly commute hours exceed declared work hours")
	}
	if in.ChildCount > 0 && !in.Household.Parenting() {
		result.Warnings = append(result.Warnings,
			"child count ignored for a non-parenting household type")
	}

	e.logger.Debug("scenario computed",
		zap.String("op", "scenario.compute"),
		zap.String("scenario", name),
		zap.Float64("leftover", result.Leftover),
		zap.Float64("freedomPerHour", result.FreedomPerHour),
	)
	return result
}

// baselineInput rewrites an input to the typical regional month: commute
// cost and time come from the city benchmarks on a public-transit pattern,
// and the lifestyle-driver bundle takes its per-category typical values.
// Income, housing, dependents, healthcare, debt, and savings settings stay
// the user's own.
func baselineInput(in costs.Input, city refdata.CityProfile) costs.Input {
	in.TransportMode = refdata.TransportPublicTransit
	in.DailyCommuteMinutes = city.CommuteMinutes
	in.CommuteContext = refdata.CommuteContextTypical
	in.CommuteCostOverride = costs.OverridableAmount{Value: city.CommuteCost, Touched: true}
	in.Drivers = refdata.TypicalDrivers()
	in.WFHUpliftMonthly = 0
	return in
}

// ComputeBaseline runs the pipeline under the typical regional assumptions,
// showing what a typical local month looks like versus the user's actual
// month.
func (e *Engine) ComputeBaseline(in costs.Input, city refdata.CityProfile) Result {
	return e.compute("baseline", baselineInput(in, city), city)
}

// ComputeRelocation holds income, work hours, and non-location costs
// constant while swapping housing, dependent cost, and commute cost for the
// target's benchmarks. Commute is forced to zero when the user's transport
// mode carries no cost, since those costs do not transfer.
func (e *Engine) ComputeRelocation(in costs.Input, city refdata.CityProfile, target refdata.RelocationTarget) Result {
	region := e.catalog.LookupRegion(in.Region)

	moved := in
	moved.Housing = costs.OverridableAmount{Value: target.Rent, Touched: true}
	moved.DailyCommuteMinutes = target.CommuteMinutes
	moved.CommuteCostOverride = costs.OverridableAmount{Value: target.CommuteCost, Touched: true}

	net := e.EstimateNet(in.Region, in.IncomeMonthly, in.IncomeIsGross) +
		mathutil.SanitizeNonNegative(in.OtherIncomeMonthly)

	breakdown := e.aggregator.Aggregate(moved, region, net)
	if moved.EffectiveChildCount() > 0 {
		breakdown.Dependents = mathutil.SanitizeNonNegative(target.Childcare)
	} else {
		breakdown.Dependents = 0
	}
	breakdown = breakdown.Retotal()

	hours := timemodel.Compute(moved.WeeklyWorkHours, moved.DailyCommuteMinutes,
		moved.TransportMode.TimeFree(), moved.OfficeDaysPerWeek)

	result := e.finish("relocation", moved, breakdown, hours)
	result.CommuteHoursSavedPerMonth = timemodel.CommuteHoursSavedPerMonth(
		in.DailyCommuteMinutes, target.CommuteMinutes)
	return result
}

// ComputeWhatIf applies ad-hoc deltas on top of the baseline scenario:
// remote days per week proportionally scale down both commute cost and
// commute time (base work hours are never reduced), plus flat rent and
// income deltas. Deltas are always measured against the typical reference
// point, not the user's current month.
func (e *Engine) ComputeWhatIf(in costs.Input, city refdata.CityProfile, remoteDays, rentDelta, incomeDelta float64) Result {
	adjusted := baselineInput(in, city)

	days := mathutil.Min(5, mathutil.Max(0, mathutil.Sanitize(remoteDays)))
	scale := 1 - days/5

	// A fully-scaled override of zero falls back to the minutes formula,
	// which the scaled minutes drive to zero as well.
	adjusted.CommuteCostOverride.Value *= scale
	adjusted.DailyCommuteMinutes *= scale

	region := e.catalog.LookupRegion(in.Region)
	housing := e.aggregator.Housing(adjusted, region)
	adjusted.Housing = costs.OverridableAmount{
		Value:   housing + mathutil.Sanitize(rentDelta),
		Touched: true,
	}

	adjusted.IncomeMonthly = mathutil.Sanitize(adjusted.IncomeMonthly) + mathutil.Sanitize(incomeDelta)

	result := e.compute("what-if", adjusted, city)
	result.Name = "what-if"
	return result
}

// ComputeDelta returns the difference between two scenario results as to
// minus from.
func ComputeDelta(from, to Result) Delta {
	return Delta{
		Leftover:       mathutil.Round(to.Leftover - from.Leftover),
		FreedomPerHour: mathutil.Round(to.FreedomPerHour - from.FreedomPerHour),
	}
}
