package adapter

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/shopspring/decimal"
)

type OrderGateway struct {
	api *storeapi.Client
}

func NewOrderGateway(api *storeapi.Client) *OrderGateway {
	return &OrderGateway{api: api}
}

func (g *OrderGateway) ByBuyer(ctx context.Context, email string) ([]domain.Order, error) {
	rows, err := g.api.OrdersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

func (g *OrderGateway) List(ctx context.Context, token string, q paging.Query) ([]domain.Order, int, error) {
	page, err := g.api.Orders(ctx, token, storeapi.PageQuery{Page: q.Page, Limit: q.Limit, Filter: q.Filter})
	if err != nil {
		return nil, 0, err
	}
	return toDomain(page.Orders), page.Total, nil
}

func (g *OrderGateway) SetStatus(ctx context.Context, token, id, status string) error {
	return g.api.UpdateOrderStatus(ctx, token, id, status)
}

func toDomain(rows []storeapi.Order) []domain.Order {
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		items := make([]domain.Item, 0, len(row.Items))
		for _, it := range row.Items {
			items = append(items, domain.Item{
				ProductID: it.ProductID,
				Name:      it.Name,
				Price:     amount(it.Price.String()),
				Quantity:  it.Quantity,
				ImageURL:  it.ImageURL,
			})
		}
		out = append(out, domain.Order{
			ID:         row.ID,
			BuyerID:    row.UserID,
			Email:      row.Email,
			OrderValue: amount(row.OrderValue.String()),
			Items:      items,
			Status:     domain.NormalizeStatus(row.Status),
			CreatedAt:  row.CreatedAt,
		})
	}
	return out
}

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
