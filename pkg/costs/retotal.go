package costs

import "github.com/leftover-labs/freedom-rate/pkg/mathutil"

// Retotal recomputes TotalOutgoings and Leftover after a caller substitutes
// benchmark figures into individual cost fields, keeping the leftover
// identity exact.
func (b Breakdown) Retotal() Breakdown {
	b.TotalOutgoings = mathutil.Round(b.Housing + b.Commute + b.Dependents +
		b.Healthcare + b.DebtService + b.Savings + b.Maintenance)
	b.Leftover = mathutil.Round(b.Net - b.TotalOutgoings)
	return b
}
