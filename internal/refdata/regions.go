// Package refdata holds the static regional and city cost benchmarks the
// engine computes against. All tables are loaded once at startup and never
// mutated; lookups are case-insensitive on the identifier.
package refdata

import "strings"

// RegionProfile holds the cost benchmarks for one region bucket.
type RegionProfile struct {
	ID string `yaml:"id" json:"id"`

	// CurrencySymbol is a display symbol only; no conversion is modeled.
	CurrencySymbol string `yaml:"currencySymbol" json:"currencySymbol"`

	// EffectiveNetRate is the flat net/gross ratio used by scenario
	// income estimation.
	EffectiveNetRate float64 `yaml:"effectiveNetRate" json:"effectiveNetRate"`

	// CommutePublicTransit and CommuteDriving are baseline monthly commute
	// costs assuming a 60-minute daily round trip.
	CommutePublicTransit float64 `yaml:"commutePublicTransit" json:"commutePublicTransit"`
	CommuteDriving       float64 `yaml:"commuteDriving" json:"commuteDriving"`

	// SoloRentBaseline is the typical monthly rent for a single occupant,
	// before household and urbanicity multipliers.
	SoloRentBaseline float64 `yaml:"soloRentBaseline" json:"soloRentBaseline"`

	// BaseChildCost is the monthly cost baseline for one school-age child.
	BaseChildCost float64 `yaml:"baseChildCost" json:"baseChildCost"`

	// BillsBase is the typical monthly utilities estimate.
	BillsBase float64 `yaml:"billsBase" json:"billsBase"`

	// ModelsHealthcare marks the region whose healthcare plans are modeled
	// explicitly; all other regions contribute zero healthcare cost.
	ModelsHealthcare bool `yaml:"modelsHealthcare" json:"modelsHealthcare"`
}

// DefaultRegionID is the fallback for unknown region identifiers. It carries
// the most conservative effective net rate of all buckets.
const DefaultRegionID = "eu"

func defaultRegions() map[string]RegionProfile {
	return map[string]RegionProfile{
		"uk": {
			ID:                   "uk",
			CurrencySymbol:       "£",
			EffectiveNetRate:     0.74,
			CommutePublicTransit: 180,
			CommuteDriving:       220,
			SoloRentBaseline:     950,
			BaseChildCost:        400,
			BillsBase:            200,
		},
		"us": {
			ID:                   "us",
			CurrencySymbol:       "$",
			EffectiveNetRate:     0.75,
			CommutePublicTransit: 120,
			CommuteDriving:       350,
			SoloRentBaseline:     1400,
			BaseChildCost:        800,
			BillsBase:            250,
			ModelsHealthcare:     true,
		},
		"eu": {
			ID:                   "eu",
			CurrencySymbol:       "€",
			EffectiveNetRate:     0.68,
			CommutePublicTransit: 90,
			CommuteDriving:       200,
			SoloRentBaseline:     800,
			BaseChildCost:        350,
			BillsBase:            180,
		},
		"ca": {
			ID:                   "ca",
			CurrencySymbol:       "C$",
			EffectiveNetRate:     0.73,
			CommutePublicTransit: 130,
			CommuteDriving:       280,
			SoloRentBaseline:     1200,
			BaseChildCost:        600,
			BillsBase:            220,
		},
		"au": {
			ID:                   "au",
			CurrencySymbol:       "A$",
			EffectiveNetRate:     0.72,
			CommutePublicTransit: 150,
			CommuteDriving:       260,
			SoloRentBaseline:     1300,
			BaseChildCost:        650,
			BillsBase:            230,
		},
	}
}

// LookupRegion returns the RegionProfile for id, falling back to the default
// region when id is unknown. Unknown identifiers are not an error.
func (c *Catalog) LookupRegion(id string) RegionProfile {
	if region, ok := c.regions[strings.ToLower(strings.TrimSpace(id))]; ok {
		return region
	}
	return c.regions[DefaultRegionID]
}

// Regions returns all region profiles keyed by identifier. The returned map
// is a copy; callers may not mutate catalog state through it.
func (c *Catalog) Regions() map[string]RegionProfile {
	out := make(map[string]RegionProfile, len(c.regions))
	for id, region := range c.regions {
		out[id] = region
	}
	return out
}
