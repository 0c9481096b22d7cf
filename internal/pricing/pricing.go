// Package pricing computes the checkout totals for a selection of units.
package pricing

import "skydesk/pkg/model"

// Breakdown is derived from the current selection and never stored.
// Subtotal and the fee are whole currency units; tax may be fractional.
type Breakdown struct {
	Subtotal       int     `json:"subtotal"`
	MaintenanceFee int     `json:"maintenance_fee"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// Calculator holds the transaction constants. The fee is charged once per
// non-empty selection; the tax rate applies to the subtotal only.
type Calculator struct {
	MaintenanceFee int
	TaxRate        float64
}

func NewCalculator(maintenanceFee int, taxRate float64) *Calculator {
	return &Calculator{
		MaintenanceFee: maintenanceFee,
		TaxRate:        taxRate,
	}
}

// Compute returns the price breakdown for the given units. Total function:
// an empty selection yields the zero breakdown, with the maintenance fee
// waived.
func (c *Calculator) Compute(units []model.Unit) Breakdown {
	if len(units) == 0 {
		return Breakdown{}
	}

	subtotal := 0
	for _, unit := range units {
		subtotal += unit.BasePrice
	}

	tax := float64(subtotal) * c.TaxRate
	return Breakdown{
		Subtotal:       subtotal,
		MaintenanceFee: c.MaintenanceFee,
		Tax:            tax,
		Total:          float64(subtotal) + float64(c.MaintenanceFee) + tax,
	}
}
