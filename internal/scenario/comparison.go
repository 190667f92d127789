package scenario

import (
	"github.com/leftover-labs/freedom-rate/pkg/costs"
)

// WhatIfDeltas are the ad-hoc adjustments applied on top of the baseline.
type WhatIfDeltas struct {
	RemoteDays  float64 `json:"remoteDays"`
	RentDelta   float64 `json:"rentDelta"`
	IncomeDelta float64 `json:"incomeDelta"`
}

// Comparison bundles the named scenarios for one input, with pairwise
// deltas. Each member is an independent snapshot.
type Comparison struct {
	CurrencySymbol string  `json:"currencySymbol"`
	Current        Result  `json:"current"`
	Baseline       Result  `json:"baseline"`
	Relocation     *Result `json:"relocation,omitempty"`
	WhatIf         Result  `json:"whatIf"`

	Deltas map[string]Delta `json:"deltas"`

	// PercentileRank places the current leftover within the regional
	// percentile bands.
	PercentileRank int `json:"percentileRank"`
}

// Compare runs every named scenario for one input. An empty or unknown
// relocation target skips the relocation comparison rather than failing.
func (e *Engine) Compare(in costs.Input, relocationTarget string, whatIf WhatIfDeltas) Comparison {
	city := e.catalog.CityOrFallback(in.City, in.Region)
	region := e.catalog.LookupRegion(in.Region)

	current := e.Compute(in, city)
	baseline := e.ComputeBaseline(in, city)
	whatIfResult := e.ComputeWhatIf(in, city, whatIf.RemoteDays, whatIf.RentDelta, whatIf.IncomeDelta)

	comparison := Comparison{
		CurrencySymbol: region.CurrencySymbol,
		Current:        current,
		Baseline:       baseline,
		WhatIf:         whatIfResult,
		Deltas: map[string]Delta{
			"currentVsBaseline": ComputeDelta(baseline, current),
			"whatIfVsBaseline":  ComputeDelta(baseline, whatIfResult),
		},
		PercentileRank: e.catalog.Rank(in.Region, current.Leftover),
	}

	if relocationTarget != "" {
		if target, ok := e.catalog.LookupTarget(relocationTarget); ok {
			relocation := e.ComputeRelocation(in, city, target)
			comparison.Relocation = &relocation
			comparison.Deltas["relocationVsCurrent"] = ComputeDelta(current, relocation)
		}
	}

	return comparison
}
