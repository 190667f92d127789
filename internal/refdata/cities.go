package refdata

import "strings"

// CityProfile holds the typical monthly figures for one city. Every city
// belongs to exactly one region that must exist in the region table.
type CityProfile struct {
	ID             string  `yaml:"id" json:"id"`
	Label          string  `yaml:"label" json:"label"`
	Region         string  `yaml:"region" json:"region"`
	Rent           float64 `yaml:"rent" json:"rent"`
	Bills          float64 `yaml:"bills" json:"bills"`
	CommuteCost    float64 `yaml:"commuteCost" json:"commuteCost"`
	CommuteMinutes float64 `yaml:"commuteMinutes" json:"commuteMinutes"`
}

func defaultCities() map[string]CityProfile {
	return map[string]CityProfile{
		"london": {
			ID: "london", Label: "London", Region: "uk",
			Rent: 1450, Bills: 230, CommuteCost: 190, CommuteMinutes: 74,
		},
		"manchester": {
			ID: "manchester", Label: "Manchester", Region: "uk",
			Rent: 900, Bills: 190, CommuteCost: 110, CommuteMinutes: 52,
		},
		"nyc": {
			ID: "nyc", Label: "New York City", Region: "us",
			Rent: 2600, Bills: 280, CommuteCost: 132, CommuteMinutes: 82,
		},
		"austin": {
			ID: "austin", Label: "Austin", Region: "us",
			Rent: 1500, Bills: 250, CommuteCost: 310, CommuteMinutes: 48,
		},
		"berlin": {
			ID: "berlin", Label: "Berlin", Region: "eu",
			Rent: 1100, Bills: 210, CommuteCost: 86, CommuteMinutes: 58,
		},
		"lisbon": {
			ID: "lisbon", Label: "Lisbon", Region: "eu",
			Rent: 950, Bills: 160, CommuteCost: 50, CommuteMinutes: 44,
		},
		"toronto": {
			ID: "toronto", Label: "Toronto", Region: "ca",
			Rent: 1900, Bills: 240, CommuteCost: 140, CommuteMinutes: 66,
		},
		"sydney": {
			ID: "sydney", Label: "Sydney", Region: "au",
			Rent: 2200, Bills: 260, CommuteCost: 180, CommuteMinutes: 70,
		},
	}
}

// LookupCity returns the CityProfile for id. An unknown identifier is not an
// error; the second return is false and callers supply a fallback profile.
func (c *Catalog) LookupCity(id string) (CityProfile, bool) {
	city, ok := c.cities[strings.ToLower(strings.TrimSpace(id))]
	return city, ok
}

// FallbackCity synthesizes a city profile from the regional baselines, used
// when the user picked no city or an unknown one.
func (c *Catalog) FallbackCity(regionID string) CityProfile {
	region := c.LookupRegion(regionID)
	return CityProfile{
		ID:             region.ID + "-typical",
		Label:          "Typical (" + region.ID + ")",
		Region:         region.ID,
		Rent:           region.SoloRentBaseline,
		Bills:          region.BillsBase,
		CommuteCost:    region.CommutePublicTransit,
		CommuteMinutes: 60,
	}
}

// CityOrFallback resolves id to a known city or the regional fallback.
func (c *Catalog) CityOrFallback(id, regionID string) CityProfile {
	if city, ok := c.LookupCity(id); ok {
		return city
	}
	return c.FallbackCity(regionID)
}

// Cities returns all city profiles keyed by identifier, as a copy.
func (c *Catalog) Cities() map[string]CityProfile {
	out := make(map[string]CityProfile, len(c.cities))
	for id, city := range c.cities {
		out[id] = city
	}
	return out
}
