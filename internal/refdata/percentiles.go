package refdata

// PercentileBand is one record of the read-only percentile source: the
// leftover amount at percentile P for a region. Bands are stored in
// ascending percentile order.
type PercentileBand struct {
	P        int     `yaml:"p" json:"p"`
	Leftover float64 `yaml:"leftover" json:"leftover"`
}

func defaultPercentiles() map[string][]PercentileBand {
	return map[string][]PercentileBand{
		"uk": {
			{P: 10, Leftover: -150}, {P: 25, Leftover: 60}, {P: 50, Leftover: 320},
			{P: 75, Leftover: 780}, {P: 90, Leftover: 1500},
		},
		"us": {
			{P: 10, Leftover: -300}, {P: 25, Leftover: 0}, {P: 50, Leftover: 450},
			{P: 75, Leftover: 1200}, {P: 90, Leftover: 2600},
		},
		"eu": {
			{P: 10, Leftover: -100}, {P: 25, Leftover: 80}, {P: 50, Leftover: 300},
			{P: 75, Leftover: 700}, {P: 90, Leftover: 1300},
		},
		"ca": {
			{P: 10, Leftover: -200}, {P: 25, Leftover: 40}, {P: 50, Leftover: 380},
			{P: 75, Leftover: 900}, {P: 90, Leftover: 1800},
		},
		"au": {
			{P: 10, Leftover: -180}, {P: 25, Leftover: 50}, {P: 50, Leftover: 400},
			{P: 75, Leftover: 950}, {P: 90, Leftover: 1900},
		},
	}
}

// Percentiles returns the ordered percentile bands for a region, falling
// back to the default region's bands for unknown identifiers.
func (c *Catalog) Percentiles(regionID string) []PercentileBand {
	region := c.LookupRegion(regionID)
	bands := c.percentiles[region.ID]
	out := make([]PercentileBand, len(bands))
	copy(out, bands)
	return out
}

// Rank estimates the percentile of a leftover amount within a region by
// linear interpolation between bands. Values below the lowest band rank at
// that band's percentile; values above the highest rank at the highest.
func (c *Catalog) Rank(regionID string, leftover float64) int {
	bands := c.Percentiles(regionID)
	if len(bands) == 0 {
		return 50
	}
	if leftover <= bands[0].Leftover {
		return bands[0].P
	}
	last := bands[len(bands)-1]
	if leftover >= last.Leftover {
		return last.P
	}
	for i := 1; i < len(bands); i++ {
		lo, hi := bands[i-1], bands[i]
		if leftover > hi.Leftover {
			continue
		}
		span := hi.Leftover - lo.Leftover
		if span <= 0 {
			return lo.P
		}
		fraction := (leftover - lo.Leftover) / span
		return lo.P + int(fraction*float64(hi.P-lo.P)+0.5)
	}
	return last.P
}
