package adapter

import (
	"context"
	"encoding/json"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/shopspring/decimal"
)

type OrderServicePlacer struct {
	api *storeapi.Client
}

func NewOrderServicePlacer(api *storeapi.Client) *OrderServicePlacer {
	return &OrderServicePlacer{api: api}
}

func (p *OrderServicePlacer) PlaceOrder(ctx context.Context, draft domain.OrderDraft) (domain.PlacedOrder, error) {
	o, err := p.api.PlaceOrder(ctx, toOrderInput(draft))
	if err != nil {
		return domain.PlacedOrder{}, err
	}

	placed := domain.PlacedOrder{
		ID:         o.ID,
		Status:     o.Status,
		OrderValue: draft.Subtotal,
		CreatedAt:  o.CreatedAt,
	}
	if v, err := decimal.NewFromString(o.OrderValue.String()); err == nil {
		placed.OrderValue = v
	}
	return placed, nil
}

func toOrderInput(draft domain.OrderDraft) storeapi.OrderInput {
	items := make([]storeapi.OrderItem, 0, len(draft.Items))
	for _, li := range draft.Items {
		items = append(items, storeapi.OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     json.Number(li.UnitPrice.String()),
			Quantity:  li.Quantity,
			ImageURL:  li.ImageURL,
		})
	}

	return storeapi.OrderInput{
		UserID:     draft.BuyerID,
		Email:      draft.BuyerEmail,
		OrderValue: json.Number(draft.Subtotal.String()),
		Items:      items,
	}
}
