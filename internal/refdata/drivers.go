package refdata

// LifestyleDriver enumerates the closed set of discretionary "staying
// functional" spend categories. The set is fixed; open-ended keys are not
// accepted anywhere in the engine.
type LifestyleDriver string

const (
	DriverSocial       LifestyleDriver = "social"
	DriverIdentity     LifestyleDriver = "identity"
	DriverConvenience  LifestyleDriver = "convenience"
	DriverComfort      LifestyleDriver = "comfort"
	DriverRelationship LifestyleDriver = "relationship"
	DriverTreats       LifestyleDriver = "treats"
	DriverDebtPressure LifestyleDriver = "debt-pressure"
)

// SliderBounds describes the valid range and regional-typical value for one
// slider category.
type SliderBounds struct {
	Min     float64
	Max     float64
	Typical float64
}

var lifestyleDriverBounds = map[LifestyleDriver]SliderBounds{
	DriverSocial:       {Min: 0, Max: 600, Typical: 120},
	DriverIdentity:     {Min: 0, Max: 400, Typical: 60},
	DriverConvenience:  {Min: 0, Max: 500, Typical: 80},
	DriverComfort:      {Min: 0, Max: 400, Typical: 70},
	DriverRelationship: {Min: 0, Max: 300, Typical: 50},
	DriverTreats:       {Min: 0, Max: 250, Typical: 40},
	DriverDebtPressure: {Min: 0, Max: 400, Typical: 0},
}

// LifestyleDrivers lists every driver category in stable order.
func LifestyleDrivers() []LifestyleDriver {
	return []LifestyleDriver{
		DriverSocial,
		DriverIdentity,
		DriverConvenience,
		DriverComfort,
		DriverRelationship,
		DriverTreats,
		DriverDebtPressure,
	}
}

// Bounds returns the bounds metadata for d; unknown categories get a
// zero-range so a stray key can never contribute spend.
func (d LifestyleDriver) Bounds() SliderBounds {
	return lifestyleDriverBounds[d]
}

// VariableSpend enumerates the closed set of variable-spend categories.
type VariableSpend string

const (
	SpendPets         VariableSpend = "pets"
	SpendTherapy      VariableSpend = "therapy"
	SpendSupportOther VariableSpend = "support-others"
	SpendHealthOOP    VariableSpend = "health-out-of-pocket"
)

var variableSpendBounds = map[VariableSpend]SliderBounds{
	SpendPets:         {Min: 0, Max: 400, Typical: 0},
	SpendTherapy:      {Min: 0, Max: 600, Typical: 0},
	SpendSupportOther: {Min: 0, Max: 800, Typical: 0},
	SpendHealthOOP:    {Min: 0, Max: 500, Typical: 0},
}

// VariableSpends lists every variable-spend category in stable order.
func VariableSpends() []VariableSpend {
	return []VariableSpend{
		SpendPets,
		SpendTherapy,
		SpendSupportOther,
		SpendHealthOOP,
	}
}

// Bounds returns the bounds metadata for v.
func (v VariableSpend) Bounds() SliderBounds {
	return variableSpendBounds[v]
}

// ClampSlider clamps a slider value into its category bounds, mapping
// non-finite input to the bound minimum.
func ClampSlider(value float64, bounds SliderBounds) float64 {
	if !(value > bounds.Min) { // catches NaN
		return bounds.Min
	}
	if value > bounds.Max {
		return bounds.Max
	}
	return value
}

// TypicalDrivers returns the per-category typical values used by the
// baseline scenario in place of the user's slider positions.
func TypicalDrivers() map[LifestyleDriver]float64 {
	out := make(map[LifestyleDriver]float64, len(lifestyleDriverBounds))
	for driver, bounds := range lifestyleDriverBounds {
		out[driver] = bounds.Typical
	}
	return out
}
