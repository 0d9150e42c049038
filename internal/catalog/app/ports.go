package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
)

type ProductGateway interface {
	All(ctx context.Context) ([]domain.Product, error)
	List(ctx context.Context, token string, q paging.Query) ([]domain.Product, int, error)
	Create(ctx context.Context, token string, f domain.ProductForm) error
	Update(ctx context.Context, token, id string, f domain.ProductForm) error
	Delete(ctx context.Context, token, id string) error
}
