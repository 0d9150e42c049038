package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID         string          `json:"id"`
	BuyerID    string          `json:"userId"`
	Email      string          `json:"email"`
	OrderValue decimal.Decimal `json:"orderValue"`
	Items      []Item          `json:"items"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Item struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"productName"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"qty"`
	ImageURL  string          `json:"imgUrl,omitempty"`
}

// LineTotal is Price × Quantity.
func (it Item) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// NormalizeStatus lower-cases s; an order without a status is pending.
func NormalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusPending
	}
	return s
}

// Counts tallies one page of orders. Revenue sums every order value on the
// page whatever its status.
type Counts struct {
	Total     int             `json:"total"`
	Pending   int             `json:"pending"`
	Completed int             `json:"completed"`
	Cancelled int             `json:"cancelled"`
	Revenue   decimal.Decimal `json:"revenue"`
}

func CountStatuses(orders []Order) Counts {
	c := Counts{Total: len(orders), Revenue: decimal.Zero}
	for _, o := range orders {
		c.Revenue = c.Revenue.Add(o.OrderValue)
		switch o.Status {
		case StatusPending:
			c.Pending++
		case StatusCompleted:
			c.Completed++
		case StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}
