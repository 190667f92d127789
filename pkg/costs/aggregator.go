package costs

import (
	"go.uber.org/zap"

	"github.com/leftover-labs/freedom-rate/internal/refdata"
	"github.com/leftover-labs/freedom-rate/pkg/constants"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

// Breakdown is the monetary portion of a derived scenario result: every
// modeled outgoing plus the signed leftover. Leftover is net minus the sum
// of the other fields exactly, with no hidden terms, and stays signed for
// delta arithmetic; display clamping is a presentation concern.
type Breakdown struct {
	Net         float64 `json:"net"`
	Housing     float64 `json:"housing"`
	Commute     float64 `json:"commute"`
	Dependents  float64 `json:"dependents"`
	Healthcare  float64 `json:"healthcare"`
	DebtService float64 `json:"debtService"`
	Savings     float64 `json:"savings"`
	Maintenance float64 `json:"maintenance"`

	TotalOutgoings float64 `json:"totalOutgoings"`
	Leftover       float64 `json:"leftover"`
}

// Aggregator combines housing, commute, dependents, healthcare, debt,
// savings, and the maintenance bundle into a monthly breakdown.
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator creates an aggregator with the given logger. A nil logger is
// replaced by a no-op logger.
func NewAggregator(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{logger: logger}
}

// SuggestedHousing is the benchmark monthly housing cost used whenever the
// user has not edited housing directly: the regional solo baseline scaled by
// household shape and urbanicity.
func (a *Aggregator) SuggestedHousing(in Input, region refdata.RegionProfile) float64 {
	return mathutil.RoundWhole(region.SoloRentBaseline *
		in.Household.RentMultiplier() *
		in.Urbanicity.Modifier().RentMultiplier)
}

// Housing resolves the effective housing cost: the user's explicit value
// once touched, the benchmark otherwise.
func (a *Aggregator) Housing(in Input, region refdata.RegionProfile) float64 {
	if in.Housing.Touched {
		return mathutil.SanitizeNonNegative(in.Housing.Value)
	}
	return a.SuggestedHousing(in, region)
}

// CommuteCost resolves the monthly commute cost. Cost-free transport modes
// yield zero; a positive explicit override wins verbatim; otherwise the
// regional mode baseline is scaled by urbanicity, commute context, and the
// ratio of actual daily minutes to the 60-minute round trip the baseline
// assumes.
func (a *Aggregator) CommuteCost(in Input, region refdata.RegionProfile) float64 {
	if in.TransportMode.CostFree() {
		return 0
	}
	if in.CommuteCostOverride.Touched && in.CommuteCostOverride.Value > 0 {
		return mathutil.Sanitize(in.CommuteCostOverride.Value)
	}

	baseline := region.CommutePublicTransit
	if in.TransportMode == refdata.TransportDriving {
		baseline = region.CommuteDriving
	}

	minutes := mathutil.SanitizeNonNegative(in.DailyCommuteMinutes)
	return mathutil.Round(baseline *
		in.Urbanicity.Modifier().CommuteMultiplier *
		in.CommuteContext.Multiplier() *
		(minutes / 60))
}

// Dependents computes the monthly dependent cost: regional base child cost
// scaled by age band and a deliberately sub-linear per-child multiplier,
// rounded to the nearest whole currency unit.
func (a *Aggregator) Dependents(in Input, region refdata.RegionProfile) float64 {
	count := in.EffectiveChildCount()
	if count == 0 {
		return 0
	}

	ageMultiplier := constants.SchoolAgeMultiplier
	if in.ChildAgeBand == refdata.AgeBandNursery {
		ageMultiplier = constants.NurseryAgeMultiplier
	}

	countMultiplier := constants.ThreePlusChildMultiplier
	switch count {
	case 1:
		countMultiplier = constants.OneChildMultiplier
	case 2:
		countMultiplier = constants.TwoChildMultiplier
	}

	return mathutil.RoundWhole(region.BaseChildCost * ageMultiplier * countMultiplier)
}

// Healthcare computes the monthly healthcare cost. Only the region that
// models healthcare explicitly contributes; a positive override wins, then
// the chosen plan's default, then the generic default.
func (a *Aggregator) Healthcare(in Input, region refdata.RegionProfile) float64 {
	if !region.ModelsHealthcare {
		return 0
	}
	if override := mathutil.Sanitize(in.HealthOverride); override > 0 {
		return override
	}
	switch in.HealthPlan {
	case PlanEmployer:
		return constants.HealthcareEmployerDefault
	case PlanMarketplace:
		return constants.HealthcareMarketplaceDefault
	case PlanNone:
		return constants.HealthcareUninsuredDefault
	}
	return constants.HealthcareGenericDefault
}

// DebtService sums the user-entered debt and student-loan repayments
// verbatim.
func (a *Aggregator) DebtService(in Input) float64 {
	return mathutil.SanitizeNonNegative(in.DebtMonthly) +
		mathutil.SanitizeNonNegative(in.StudentLoanMonthly)
}

// Savings applies the clamped savings rate to net income.
func (a *Aggregator) Savings(netMonthly float64, savingsRatePct float64) float64 {
	rate := mathutil.Sanitize(savingsRatePct)
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	return mathutil.RoundWhole(mathutil.ApplyPercentage(mathutil.SanitizeNonNegative(netMonthly), rate))
}

// Bills estimates monthly utilities: zero when declared included in housing,
// otherwise the regional base inflated in the densest urbanicity tier.
func (a *Aggregator) Bills(in Input, region refdata.RegionProfile) float64 {
	if in.BillsIncludedInHousing {
		return 0
	}
	return mathutil.RoundWhole(region.BillsBase * in.Urbanicity.Modifier().BillsFactor)
}

// Maintenance totals the discretionary bundle: all lifestyle drivers, all
// variable spends, the bills estimate, and the work-from-home utility uplift
// when fully remote.
func (a *Aggregator) Maintenance(in Input, region refdata.RegionProfile) float64 {
	total := 0.0
	for _, driver := range refdata.LifestyleDrivers() {
		total += in.DriverValue(driver)
	}
	for _, spend := range refdata.VariableSpends() {
		total += in.SpendValue(spend)
	}
	total += a.Bills(in, region)
	if in.TransportMode.TimeFree() {
		total += mathutil.SanitizeNonNegative(in.WFHUpliftMonthly)
	}
	return mathutil.Round(total)
}

// Aggregate produces the full monthly breakdown for an input against a
// region profile and an already-estimated net income. It never fails;
// degenerate input resolves to well-defined zero or negative figures.
func (a *Aggregator) Aggregate(in Input, region refdata.RegionProfile, netMonthly float64) Breakdown {
	b := Breakdown{
		Net:         mathutil.SanitizeNonNegative(netMonthly),
		Housing:     a.Housing(in, region),
		Commute:     a.CommuteCost(in, region),
		Dependents:  a.Dependents(in, region),
		Healthcare:  a.Healthcare(in, region),
		DebtService: a.DebtService(in),
		Maintenance: a.Maintenance(in, region),
	}
	b.Savings = a.Savings(b.Net, in.SavingsRatePct)

	b.TotalOutgoings = mathutil.Round(b.Housing + b.Commute + b.Dependents +
		b.Healthcare + b.DebtService + b.Savings + b.Maintenance)
	b.Leftover = mathutil.Round(b.Net - b.TotalOutgoings)

	if b.Leftover < 0 {
		a.logger.Debug("negative leftover",
			zap.String("op", "costs.Aggregate"),
			zap.Float64("leftover", b.Leftover),
		)
	}
	return b
}
