package scenario

import (
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/leftover-labs/freedom-rate/internal/refdata"
	"github.com/leftover-labs/freedom-rate/pkg/constants"
	"github.com/leftover-labs/freedom-rate/pkg/costs"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

func newTestEngine() *Engine {
	return NewEngine(refdata.NewCatalog(), zap.NewNop())
}

// commuterInput is the documented reference month: net 2200, housing 1200,
// commute 180, debt 150, savings 8%, maintenance 450, 45-hour weeks with a
// 60-minute commute.
func commuterInput() costs.Input {
	return costs.Input{
		IncomeMonthly:          2200,
		Region:                 "uk",
		Urbanicity:             refdata.UrbanicityCity,
		CommuteContext:         refdata.CommuteContextTypical,
		Household:              refdata.HouseholdSolo,
		Housing:                costs.OverridableAmount{Value: 1200, Touched: true},
		BillsIncludedInHousing: true,
		WeeklyWorkHours:        45,
		TransportMode:          refdata.TransportPublicTransit,
		DailyCommuteMinutes:    60,
		DebtMonthly:            150,
		SavingsRatePct:         8,
		Drivers: map[refdata.LifestyleDriver]float64{
			refdata.DriverSocial:       120,
			refdata.DriverIdentity:     60,
			refdata.DriverConvenience:  80,
			refdata.DriverComfort:      70,
			refdata.DriverRelationship: 50,
			refdata.DriverTreats:       40,
			refdata.DriverDebtPressure: 30,
		},
	}
}

func TestComputeReferenceMonth(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	city := engine.Catalog().CityOrFallback("", "uk")

	result := engine.Compute(in, city)

	if result.Net != 2200 {
		t.Errorf("net = %v, expected 2200", result.Net)
	}
	if result.Commute != 180 {
		t.Errorf("commute = %v, expected 180", result.Commute)
	}
	if result.Leftover != 44 {
		t.Errorf("leftover = %v, expected 44", result.Leftover)
	}
	if result.HoursPerMonth != 215 {
		t.Errorf("hours per month = %v, expected 215", result.HoursPerMonth)
	}
	if result.FreedomPerHour != 0.20 {
		t.Errorf("freedom rate = %v, expected 0.20", result.FreedomPerHour)
	}
	if result.Tier != "breakeven" {
		t.Errorf("tier = %v, expected breakeven", result.Tier)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	city := engine.Catalog().CityOrFallback("london", "uk")

	first := engine.Compute(in, city)
	second := engine.Compute(in, city)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	before := in
	city := engine.Catalog().CityOrFallback("london", "uk")

	engine.Compute(in, city)
	engine.ComputeBaseline(in, city)
	engine.ComputeWhatIf(in, city, 3, -200, 500)

	if !reflect.DeepEqual(in, before) {
		t.Errorf("engine mutated the caller's input")
	}
}

func TestComputeGrossIncome(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.IncomeIsGross = true
	in.IncomeMonthly = 3000
	city := engine.Catalog().CityOrFallback("", "uk")

	result := engine.Compute(in, city)
	if result.Net != 3000*0.74 {
		t.Errorf("net = %v, expected the flat uk effective rate, %v", result.Net, 3000*0.74)
	}
}

func TestComputeOtherIncomeAddedAfterTax(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.IncomeIsGross = true
	in.IncomeMonthly = 3000
	in.OtherIncomeMonthly = 250
	city := engine.Catalog().CityOrFallback("", "uk")

	result := engine.Compute(in, city)
	if result.Net != 3000*0.74+250 {
		t.Errorf("net = %v, expected other income untaxed", result.Net)
	}
}

func TestComputeZeroIncomeStillResolves(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.IncomeMonthly = 0
	city := engine.Catalog().CityOrFallback("", "uk")

	result := engine.Compute(in, city)
	if result.Leftover >= 0 {
		t.Errorf("leftover = %v, expected well-defined negative", result.Leftover)
	}
	if math.IsNaN(result.FreedomPerHour) || math.IsInf(result.FreedomPerHour, 0) {
		t.Errorf("freedom rate not finite: %v", result.FreedomPerHour)
	}
	if result.Tier != "unsustainable" {
		t.Errorf("tier = %v, expected the distinct negative classification", result.Tier)
	}
}

func TestRemoteModeZeroesCostAndTime(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.TransportMode = refdata.TransportRemote
	in.DailyCommuteMinutes = 240 // slider value must not matter
	city := engine.Catalog().CityOrFallback("", "uk")

	result := engine.Compute(in, city)
	if result.Commute != 0 {
		t.Errorf("remote commute cost = %v, expected 0", result.Commute)
	}
	if result.WeeklyCommuteHours != 0 {
		t.Errorf("remote commute hours = %v, expected 0", result.WeeklyCommuteHours)
	}
	if result.HoursPerMonth != math.Round(45*4.3) {
		t.Errorf("monthly hours = %v, expected work hours only", result.HoursPerMonth)
	}
}

func TestWalkBikeZeroesCostButNotTime(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.TransportMode = refdata.TransportWalkBike
	city := engine.Catalog().CityOrFallback("", "uk")

	result := engine.Compute(in, city)
	if result.Commute != 0 {
		t.Errorf("walk/bike commute cost = %v, expected 0", result.Commute)
	}
	if result.WeeklyCommuteHours != 5 {
		t.Errorf("walk/bike commute hours = %v, expected minutes still counted", result.WeeklyCommuteHours)
	}
}

func TestBaselineReplacesCommuteAndDrivers(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	// Extreme personal choices the baseline must ignore.
	in.DailyCommuteMinutes = 200
	in.CommuteCostOverride = costs.OverridableAmount{Value: 900, Touched: true}
	in.Drivers = map[refdata.LifestyleDriver]float64{refdata.DriverSocial: 600}
	city := engine.Catalog().CityOrFallback("london", "uk")

	baseline := engine.ComputeBaseline(in, city)
	if baseline.Commute != city.CommuteCost {
		t.Errorf("baseline commute = %v, expected the city benchmark %v", baseline.Commute, city.CommuteCost)
	}

	typicalSum := 0.0
	for _, value := range refdata.TypicalDrivers() {
		typicalSum += value
	}
	if baseline.Maintenance != typicalSum {
		t.Errorf("baseline maintenance = %v, expected the typical driver sum %v",
			baseline.Maintenance, typicalSum)
	}

	// Income, housing, debt, and savings stay the user's own.
	if baseline.Net != 2200 || baseline.Housing != 1200 || baseline.DebtService != 150 {
		t.Errorf("baseline altered non-commute settings: %+v", baseline.Breakdown)
	}
}

func TestRelocationEqualBenchmarksYieldZeroDelta(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.ChildCount = 0
	city := engine.Catalog().CityOrFallback("", "uk")

	current := engine.Compute(in, city)
	target := refdata.RelocationTarget{
		ID:             "mirror",
		Rent:           current.Housing,
		Childcare:      current.Dependents,
		CommuteCost:    current.Commute,
		CommuteMinutes: in.DailyCommuteMinutes,
	}

	relocation := engine.ComputeRelocation(in, city, target)
	delta := ComputeDelta(current, relocation)
	if delta.Leftover != 0 {
		t.Errorf("leftover delta = %v, expected 0", delta.Leftover)
	}
	if delta.FreedomPerHour != 0 {
		t.Errorf("freedom rate delta = %v, expected 0", delta.FreedomPerHour)
	}
}

func TestRelocationSwapsLocationCosts(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.Household = refdata.HouseholdPartnerKids
	in.ChildCount = 2
	in.ChildAgeBand = refdata.AgeBandNursery
	city := engine.Catalog().CityOrFallback("", "uk")

	target, ok := engine.Catalog().LookupTarget("lisbon")
	if !ok {
		t.Fatal("lisbon missing from the target catalogue")
	}

	relocation := engine.ComputeRelocation(in, city, target)
	if relocation.Housing != target.Rent {
		t.Errorf("housing = %v, expected the target rent %v", relocation.Housing, target.Rent)
	}
	if relocation.Dependents != target.Childcare {
		t.Errorf("dependents = %v, expected the target childcare %v", relocation.Dependents, target.Childcare)
	}
	if relocation.Commute != target.CommuteCost {
		t.Errorf("commute = %v, expected the target benchmark %v", relocation.Commute, target.CommuteCost)
	}

	// Income and debt held constant.
	if relocation.Net != 2200 || relocation.DebtService != 150 {
		t.Errorf("relocation altered non-location costs: %+v", relocation.Breakdown)
	}
}

func TestRelocationRemoteModeKeepsCommuteZero(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.TransportMode = refdata.TransportRemote
	city := engine.Catalog().CityOrFallback("", "uk")

	target, _ := engine.Catalog().LookupTarget("austin")
	relocation := engine.ComputeRelocation(in, city, target)
	if relocation.Commute != 0 {
		t.Errorf("remote relocation commute = %v, costs do not transfer", relocation.Commute)
	}
}

func TestRelocationCommuteHoursSaved(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.DailyCommuteMinutes = 90
	city := engine.Catalog().CityOrFallback("", "uk")

	target := refdata.RelocationTarget{ID: "short", CommuteMinutes: 30, Rent: 800}
	relocation := engine.ComputeRelocation(in, city, target)

	// (90 - 30) * 22 / 60
	if relocation.CommuteHoursSavedPerMonth != 22 {
		t.Errorf("commute hours saved = %v, expected 22", relocation.CommuteHoursSavedPerMonth)
	}

	longer := refdata.RelocationTarget{ID: "long", CommuteMinutes: 120, Rent: 800}
	relocation = engine.ComputeRelocation(in, city, longer)
	if relocation.CommuteHoursSavedPerMonth != 0 {
		t.Errorf("a longer target commute saves %v hours, expected 0", relocation.CommuteHoursSavedPerMonth)
	}
}

func TestWhatIfZeroDeltasEqualBaseline(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	city := engine.Catalog().CityOrFallback("london", "uk")

	baseline := engine.ComputeBaseline(in, city)
	whatIf := engine.ComputeWhatIf(in, city, 0, 0, 0)

	if whatIf.Leftover != baseline.Leftover {
		t.Errorf("what-if leftover %v != baseline %v", whatIf.Leftover, baseline.Leftover)
	}
	if whatIf.FreedomPerHour != baseline.FreedomPerHour {
		t.Errorf("what-if rate %v != baseline %v", whatIf.FreedomPerHour, baseline.FreedomPerHour)
	}
	if whatIf.HoursPerMonth != baseline.HoursPerMonth {
		t.Errorf("what-if hours %v != baseline %v", whatIf.HoursPerMonth, baseline.HoursPerMonth)
	}
}

func TestWhatIfRemoteDaysScaleCommute(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	city := engine.Catalog().CityOrFallback("london", "uk")

	baseline := engine.ComputeBaseline(in, city)

	twoRemote := engine.ComputeWhatIf(in, city, 2, 0, 0)
	expectedCost := baseline.Commute * (1 - 2.0/5)
	if !mathutil.WithinTolerance(twoRemote.Commute, expectedCost, constants.CurrencyTolerance) {
		t.Errorf("commute = %v, expected %v at two remote days", twoRemote.Commute, expectedCost)
	}
	if twoRemote.WeeklyCommuteHours >= baseline.WeeklyCommuteHours {
		t.Errorf("commute time did not shrink with remote days")
	}

	fullyRemote := engine.ComputeWhatIf(in, city, 5, 0, 0)
	if fullyRemote.Commute != 0 {
		t.Errorf("commute = %v at five remote days, expected 0", fullyRemote.Commute)
	}
	if fullyRemote.WeeklyCommuteHours != 0 {
		t.Errorf("commute hours = %v at five remote days, expected 0", fullyRemote.WeeklyCommuteHours)
	}
	// Base work hours are never reduced.
	if fullyRemote.HoursPerMonth != math.Round(in.WeeklyWorkHours*4.3) {
		t.Errorf("monthly hours = %v, expected work hours intact", fullyRemote.HoursPerMonth)
	}
}

func TestWhatIfRemoteDaysClamped(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	city := engine.Catalog().CityOrFallback("london", "uk")

	overFive := engine.ComputeWhatIf(in, city, 9, 0, 0)
	atFive := engine.ComputeWhatIf(in, city, 5, 0, 0)
	if overFive.Commute != atFive.Commute || overFive.Leftover != atFive.Leftover {
		t.Errorf("remote days above 5 not clamped: %+v vs %+v", overFive.Breakdown, atFive.Breakdown)
	}

	belowZero := engine.ComputeWhatIf(in, city, -3, 0, 0)
	baseline := engine.ComputeBaseline(in, city)
	if belowZero.Commute != baseline.Commute || belowZero.Leftover != baseline.Leftover {
		t.Errorf("negative remote days not clamped to zero: %+v vs %+v", belowZero.Breakdown, baseline.Breakdown)
	}
}

func TestWhatIfRentAndIncomeDeltas(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	city := engine.Catalog().CityOrFallback("london", "uk")

	baseline := engine.ComputeBaseline(in, city)

	cheaper := engine.ComputeWhatIf(in, city, 0, -200, 0)
	if cheaper.Housing != baseline.Housing-200 {
		t.Errorf("housing = %v, expected %v", cheaper.Housing, baseline.Housing-200)
	}
	if cheaper.Leftover != baseline.Leftover+200 {
		t.Errorf("leftover = %v, expected %v", cheaper.Leftover, baseline.Leftover+200)
	}

	// Net-income profiles take the income delta at face value; savings
	// scale with the higher net.
	richer := engine.ComputeWhatIf(in, city, 0, 0, 300)
	if richer.Net != baseline.Net+300 {
		t.Errorf("net = %v, expected %v", richer.Net, baseline.Net+300)
	}
}

func TestWhatIfIncomeDeltaAppliedBeforeFlatRate(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.IncomeIsGross = true
	in.IncomeMonthly = 3000
	city := engine.Catalog().CityOrFallback("london", "uk")

	richer := engine.ComputeWhatIf(in, city, 0, 0, 1000)
	if richer.Net != 4000*0.74 {
		t.Errorf("net = %v, expected the delta taxed at the flat rate", richer.Net)
	}
}

func TestComputeDelta(t *testing.T) {
	a := Result{Breakdown: costs.Breakdown{Leftover: 44}, FreedomPerHour: 0.20}
	b := Result{Breakdown: costs.Breakdown{Leftover: -100}, FreedomPerHour: -0.47}

	delta := ComputeDelta(a, b)
	if delta.Leftover != -144 {
		t.Errorf("leftover delta = %v, expected -144", delta.Leftover)
	}
	if delta.FreedomPerHour != -0.67 {
		t.Errorf("rate delta = %v, expected -0.67", delta.FreedomPerHour)
	}
}

func TestCompare(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()

	comparison := engine.Compare(in, "lisbon", WhatIfDeltas{RemoteDays: 2})

	if comparison.CurrencySymbol != "£" {
		t.Errorf("currency symbol = %q, expected the uk symbol", comparison.CurrencySymbol)
	}
	if comparison.Relocation == nil {
		t.Fatalf("expected a relocation result for a known target")
	}
	for _, name := range []string{"currentVsBaseline", "whatIfVsBaseline", "relocationVsCurrent"} {
		if _, ok := comparison.Deltas[name]; !ok {
			t.Errorf("missing delta %q", name)
		}
	}

	unknownTarget := engine.Compare(in, "mars", WhatIfDeltas{})
	if unknownTarget.Relocation != nil {
		t.Errorf("unknown target should skip the relocation comparison")
	}
}

func TestCommuteDominantWarning(t *testing.T) {
	engine := newTestEngine()
	in := commuterInput()
	in.WeeklyWorkHours = 20
	in.DailyCommuteMinutes = 300
	city := engine.Catalog().CityOrFallback("", "uk")

	result := engine.Compute(in, city)
	if len(result.Warnings) == 0 {
		t.Errorf("expected an advisory warning for a commute-dominant week")
	}
}

func TestEstimateNetUnknownRegionUsesConservativeRate(t *testing.T) {
	engine := newTestEngine()
	net := engine.EstimateNet("atlantis", 1000, true)
	if net != 680 {
		t.Errorf("net = %v, expected the most conservative rate", net)
	}
}
