package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
)

type OrderGateway interface {
	ByBuyer(ctx context.Context, email string) ([]domain.Order, error)
	List(ctx context.Context, token string, q paging.Query) ([]domain.Order, int, error)
	SetStatus(ctx context.Context, token, id, status string) error
}
