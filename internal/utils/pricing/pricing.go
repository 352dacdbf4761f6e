// Package pricing derives the total payable amount for a catalog item from
// its base price using the fixed TDS and GST rates.
package pricing

import "github.com/shopspring/decimal"

var (
	tdsRate = decimal.NewFromFloat(0.10)
	gstRate = decimal.NewFromFloat(0.18)
)

// Breakdown is the tax breakdown returned alongside every settlement.
type Breakdown struct {
	Base  decimal.Decimal `json:"base"`
	TDS   decimal.Decimal `json:"tds"`
	GST   decimal.Decimal `json:"gst"`
	Total decimal.Decimal `json:"total"`
}

// Compute calculates the TDS (10%) and GST (18%) components for a base price
// and the total payable amount. The total is rounded to the nearest whole
// currency unit, half away from zero.
func Compute(base decimal.Decimal) Breakdown {
	tds := base.Mul(tdsRate)
	gst := base.Mul(gstRate)
	total := base.Add(tds).Add(gst).Round(0)
	return Breakdown{
		Base:  base,
		TDS:   tds,
		GST:   gst,
		Total: total,
	}
}
