package refdata

import (
	"strings"

	"github.com/leftover-labs/freedom-rate/pkg/constants"
)

// Urbanicity categorizes how dense the user's area is. Multipliers layer on
// top of the regional rent and commute baselines; 1.0 is the neutral case.
type Urbanicity string

const (
	UrbanicityCore     Urbanicity = "core"
	UrbanicityCity     Urbanicity = "city"
	UrbanicitySuburban Urbanicity = "suburban"
	UrbanicityRural    Urbanicity = "rural"
)

// AreaModifier holds the multiplicative adjustments for one urbanicity tier.
type AreaModifier struct {
	RentMultiplier    float64
	CommuteMultiplier float64

	// BillsFactor inflates the regional bills base; only the densest tier
	// carries a factor above 1.0.
	BillsFactor float64
}

var areaModifiers = map[Urbanicity]AreaModifier{
	UrbanicityCore:     {RentMultiplier: 1.25, CommuteMultiplier: 1.15, BillsFactor: constants.CoreUrbanBillsFactor},
	UrbanicityCity:     {RentMultiplier: 1.0, CommuteMultiplier: 1.0, BillsFactor: 1.0},
	UrbanicitySuburban: {RentMultiplier: 0.85, CommuteMultiplier: 1.10, BillsFactor: 1.0},
	UrbanicityRural:    {RentMultiplier: 0.70, CommuteMultiplier: 1.25, BillsFactor: 1.0},
}

// Modifier returns the AreaModifier for u; unknown values resolve to the
// neutral city tier.
func (u Urbanicity) Modifier() AreaModifier {
	if m, ok := areaModifiers[Urbanicity(strings.ToLower(string(u)))]; ok {
		return m
	}
	return areaModifiers[UrbanicityCity]
}

// CommuteContext categorizes the commute market the user operates in.
type CommuteContext string

const (
	CommuteContextMajorHub  CommuteContext = "major-hub"
	CommuteContextTypical   CommuteContext = "typical"
	CommuteContextSmallTown CommuteContext = "small-town"
)

var commuteContextMultipliers = map[CommuteContext]float64{
	CommuteContextMajorHub:  1.30,
	CommuteContextTypical:   1.0,
	CommuteContextSmallTown: 0.80,
}

// Multiplier returns the commute-cost multiplier for ctx; unknown values
// resolve to the neutral 1.0.
func (ctx CommuteContext) Multiplier() float64 {
	if m, ok := commuteContextMultipliers[CommuteContext(strings.ToLower(string(ctx)))]; ok {
		return m
	}
	return 1.0
}

// HouseholdType enumerates the supported household shapes.
type HouseholdType string

const (
	HouseholdSolo         HouseholdType = "solo"
	HouseholdPartner      HouseholdType = "partner"
	HouseholdPartnerKids  HouseholdType = "partner-kids"
	HouseholdSingleParent HouseholdType = "single-parent"
	HouseholdShared       HouseholdType = "shared"
	HouseholdWithFamily   HouseholdType = "with-family"
)

type householdProfile struct {
	rentMultiplier float64
	parenting      bool
}

var householdProfiles = map[HouseholdType]householdProfile{
	HouseholdSolo:         {rentMultiplier: 1.0},
	HouseholdPartner:      {rentMultiplier: 0.60},
	HouseholdPartnerKids:  {rentMultiplier: 0.75, parenting: true},
	HouseholdSingleParent: {rentMultiplier: 0.90, parenting: true},
	HouseholdShared:       {rentMultiplier: 0.50},
	HouseholdWithFamily:   {rentMultiplier: 0.15},
}

func (h HouseholdType) profile() householdProfile {
	if p, ok := householdProfiles[HouseholdType(strings.ToLower(string(h)))]; ok {
		return p
	}
	return householdProfiles[HouseholdSolo]
}

// RentMultiplier returns the per-occupant share of the regional solo rent
// baseline for this household shape.
func (h HouseholdType) RentMultiplier() float64 {
	return h.profile().rentMultiplier
}

// Parenting reports whether child-related fields are meaningful for this
// household type. Non-parenting types force child count to zero.
func (h HouseholdType) Parenting() bool {
	return h.profile().parenting
}

// ChildAgeBand selects the dependent-cost age multiplier.
type ChildAgeBand string

const (
	AgeBandNursery ChildAgeBand = "nursery"
	AgeBandSchool  ChildAgeBand = "school"
)

// TransportMode enumerates how the user gets to work. Cost and time are
// independent axes: remote zeroes both, walk/bike zeroes only cost.
type TransportMode string

const (
	TransportPublicTransit TransportMode = "public-transit"
	TransportDriving       TransportMode = "driving"
	TransportWalkBike      TransportMode = "walk-bike"
	TransportRemote        TransportMode = "remote"
)

// CostFree reports whether the mode carries no monthly commute cost.
func (m TransportMode) CostFree() bool {
	switch TransportMode(strings.ToLower(string(m))) {
	case TransportWalkBike, TransportRemote:
		return true
	}
	return false
}

// TimeFree reports whether the mode contributes no commute time. Only fully
// remote work zeroes commute minutes.
func (m TransportMode) TimeFree() bool {
	return TransportMode(strings.ToLower(string(m))) == TransportRemote
}
