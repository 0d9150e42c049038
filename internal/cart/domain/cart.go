package domain

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is UnitPrice × Quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Product is what the cart needs to know about a catalog entry at add time.
type Product struct {
	ID       string
	Name     string
	ImageURL string
	Price    decimal.Decimal
}

// Cart holds at most one LineItem per product. Quantities are always >= 1.
// The zero value is an empty cart ready to use.
type Cart struct {
	items []LineItem
}

func NewCart(items ...LineItem) *Cart {
	c := &Cart{}
	c.restore(items)
	return c
}

// Add inserts the product with quantity 1. A product already in the cart is
// left as is; the quantity is not bumped.
func (c *Cart) Add(p Product) {
	if c.indexOf(p.ID) >= 0 {
		return
	}
	price := p.Price
	if price.IsNegative() {
		price = decimal.Zero
	}
	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		UnitPrice: price,
		Quantity:  1,
	})
}

func (c *Cart) Increment(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity++
	}
}

// Decrement lowers the quantity but never below 1 and never removes the line.
func (c *Cart) Decrement(productID string) {
	if i := c.indexOf(productID); i >= 0 && c.items[i].Quantity > 1 {
		c.items[i].Quantity--
	}
}

func (c *Cart) Remove(productID string) {
	c.items = slices.DeleteFunc(c.items, func(li LineItem) bool {
		return li.ProductID == productID
	})
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items.
func (c *Cart) Items() []LineItem {
	return slices.Clone(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, li := range c.items {
		n += li.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range c.items {
		sum = sum.Add(li.LineTotal())
	}
	return sum
}

func (c *Cart) Totals() Totals {
	return ComputeTotals(c.items)
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.items, func(li LineItem) bool {
		return li.ProductID == productID
	})
}

// restore rebuilds the cart from stored items, dropping duplicates (first one
// wins) and lifting non-positive quantities back to 1.
func (c *Cart) restore(items []LineItem) {
	c.items = nil
	for _, li := range items {
		if li.ProductID == "" || c.indexOf(li.ProductID) >= 0 {
			continue
		}
		if li.Quantity < 1 {
			li.Quantity = 1
		}
		if li.UnitPrice.IsNegative() {
			li.UnitPrice = decimal.Zero
		}
		c.items = append(c.items, li)
	}
}

type cartJSON struct {
	Items []LineItem `json:"items"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(cartJSON{Items: items})
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw cartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.restore(raw.Items)
	return nil
}
