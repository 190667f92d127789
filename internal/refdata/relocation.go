package refdata

import "strings"

// RelocationTarget is a fixed catalogue entry used by relocation
// comparisons. Quality scores are soft 0-10 signals, not inputs to any
// monetary calculation.
type RelocationTarget struct {
	ID               string  `yaml:"id" json:"id"`
	Label            string  `yaml:"label" json:"label"`
	Rent             float64 `yaml:"rent" json:"rent"`
	Childcare        float64 `yaml:"childcare" json:"childcare"`
	CommuteCost      float64 `yaml:"commuteCost" json:"commuteCost"`
	CommuteMinutes   float64 `yaml:"commuteMinutes" json:"commuteMinutes"`
	LifestyleScore   float64 `yaml:"lifestyleScore" json:"lifestyleScore"`
	OpportunityScore float64 `yaml:"opportunityScore" json:"opportunityScore"`
}

func defaultTargets() map[string]RelocationTarget {
	return map[string]RelocationTarget{
		"lisbon": {
			ID: "lisbon", Label: "Lisbon, Portugal",
			Rent: 950, Childcare: 450, CommuteCost: 50, CommuteMinutes: 44,
			LifestyleScore: 8.5, OpportunityScore: 6.0,
		},
		"valencia": {
			ID: "valencia", Label: "Valencia, Spain",
			Rent: 850, Childcare: 400, CommuteCost: 45, CommuteMinutes: 38,
			LifestyleScore: 8.8, OpportunityScore: 5.5,
		},
		"berlin": {
			ID: "berlin", Label: "Berlin, Germany",
			Rent: 1100, Childcare: 150, CommuteCost: 86, CommuteMinutes: 58,
			LifestyleScore: 7.8, OpportunityScore: 7.5,
		},
		"krakow": {
			ID: "krakow", Label: "Krakow, Poland",
			Rent: 700, Childcare: 350, CommuteCost: 30, CommuteMinutes: 40,
			LifestyleScore: 7.5, OpportunityScore: 6.5,
		},
		"austin": {
			ID: "austin", Label: "Austin, USA",
			Rent: 1500, Childcare: 1100, CommuteCost: 310, CommuteMinutes: 48,
			LifestyleScore: 7.2, OpportunityScore: 8.5,
		},
		"chiang-mai": {
			ID: "chiang-mai", Label: "Chiang Mai, Thailand",
			Rent: 400, Childcare: 300, CommuteCost: 25, CommuteMinutes: 25,
			LifestyleScore: 8.0, OpportunityScore: 4.5,
		},
	}
}

// LookupTarget returns the relocation target for id; the second return is
// false for unknown identifiers.
func (c *Catalog) LookupTarget(id string) (RelocationTarget, bool) {
	target, ok := c.targets[strings.ToLower(strings.TrimSpace(id))]
	return target, ok
}

// Targets returns all relocation targets keyed by identifier, as a copy.
func (c *Catalog) Targets() map[string]RelocationTarget {
	out := make(map[string]RelocationTarget, len(c.targets))
	for id, target := range c.targets {
		out[id] = target
	}
	return out
}
