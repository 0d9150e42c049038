package domain

import "github.com/shopspring/decimal"

var (
	// FreeShippingThreshold is exclusive: a subtotal must exceed it.
	FreeShippingThreshold = decimal.NewFromInt(50)
	FlatShippingFee       = decimal.RequireFromString("9.99")
	TaxRate               = decimal.RequireFromString("0.08")
)

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals applies the flat shipping and tax rules. The fee is charged
// whenever the subtotal does not exceed the threshold, an empty cart
// included.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.LineTotal())
	}

	shipping := FlatShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

func (t Totals) FreeShipping() bool {
	return t.Shipping.IsZero()
}

// FreeShippingRemaining is how much more the buyer must add before shipping
// becomes free. Zero once the subtotal reaches the threshold.
func (t Totals) FreeShippingRemaining() decimal.Decimal {
	if t.Subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FreeShippingThreshold.Sub(t.Subtotal)
}

// Summary is the display form, every amount rounded to cents.
type Summary struct {
	ItemCount             int    `json:"itemCount"`
	Subtotal              string `json:"subtotal"`
	Shipping              string `json:"shipping"`
	Tax                   string `json:"tax"`
	Total                 string `json:"total"`
	FreeShipping          bool   `json:"freeShipping"`
	FreeShippingRemaining string `json:"freeShippingRemaining,omitempty"`
}

func (c *Cart) Summary() Summary {
	t := c.Totals()
	s := Summary{
		ItemCount:    c.ItemCount(),
		Subtotal:     t.Subtotal.StringFixed(2),
		Shipping:     t.Shipping.StringFixed(2),
		Tax:          t.Tax.StringFixed(2),
		Total:        t.Total.StringFixed(2),
		FreeShipping: t.FreeShipping(),
	}
	if rem := t.FreeShippingRemaining(); rem.IsPositive() {
		s.FreeShippingRemaining = rem.StringFixed(2)
	}
	return s
}
