package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, draft domain.OrderDraft) (domain.PlacedOrder, error)
}
