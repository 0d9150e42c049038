package domain

import (
	"time"

	"github.com/dwikikusuma/storefront/pkg/validation"
	"github.com/shopspring/decimal"
)

type Buyer struct {
	ID    string
	Email string
}

func (b Buyer) Validate() error {
	return validation.Check(
		validation.Required("userId", b.ID),
		validation.Required("email", b.Email),
	)
}

// OrderDraft is the snapshot sent to the order service.
type OrderDraft struct {
	BuyerID    string
	BuyerEmail string
	Subtotal   decimal.Decimal
	Items      []LineItem
}

func (c *Cart) Draft(b Buyer) OrderDraft {
	return OrderDraft{
		BuyerID:    b.ID,
		BuyerEmail: b.Email,
		Subtotal:   c.Subtotal(),
		Items:      c.Items(),
	}
}

type PlacedOrder struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	OrderValue decimal.Decimal `json:"orderValue"`
	CreatedAt  time.Time       `json:"createdAt"`
}
