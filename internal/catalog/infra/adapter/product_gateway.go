package adapter

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/shopspring/decimal"
)

type ProductGateway struct {
	api *storeapi.Client
	log *slog.Logger
}

func NewProductGateway(api *storeapi.Client, log *slog.Logger) *ProductGateway {
	if log == nil {
		log = slog.Default()
	}
	return &ProductGateway{api: api, log: log}
}

// All is the storefront catalog. Rows without a usable price are left out so
// they can never be added to a cart.
func (g *ProductGateway) All(ctx context.Context) ([]domain.Product, error) {
	rows, err := g.api.AllProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, ok := g.toDomain(row)
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *ProductGateway) List(ctx context.Context, token string, q paging.Query) ([]domain.Product, int, error) {
	page, err := g.api.Products(ctx, token, storeapi.PageQuery{Page: q.Page, Limit: q.Limit, Filter: q.Filter})
	if err != nil {
		return nil, 0, err
	}
	// Admins still see unpriced rows, at zero, so they can fix them.
	out := make([]domain.Product, 0, len(page.Products))
	for _, row := range page.Products {
		p, _ := g.toDomain(row)
		out = append(out, p)
	}
	return out, page.Total, nil
}

func (g *ProductGateway) Create(ctx context.Context, token string, f domain.ProductForm) error {
	return g.api.CreateProduct(ctx, token, toInput(f))
}

func (g *ProductGateway) Update(ctx context.Context, token, id string, f domain.ProductForm) error {
	return g.api.UpdateProduct(ctx, token, id, toInput(f))
}

func (g *ProductGateway) Delete(ctx context.Context, token, id string) error {
	return g.api.DeleteProduct(ctx, token, id)
}

func toInput(f domain.ProductForm) storeapi.ProductInput {
	return storeapi.ProductInput{
		Name:        f.ProductName,
		Description: f.Description,
		Price:       json.Number(f.Price),
		ImageURL:    f.ImgURL,
	}
}

// toDomain maps a row; ok is false when the price is missing, malformed or
// negative, in which case Price is zero.
func (g *ProductGateway) toDomain(row storeapi.Product) (domain.Product, bool) {
	p := domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       decimal.Zero,
		ImageURL:    row.ImageURL,
	}
	price, err := decimal.NewFromString(row.Price.String())
	if err != nil || price.IsNegative() {
		g.log.Warn("product has no usable price",
			slog.String("product_id", row.ID),
			slog.String("price", row.Price.String()),
		)
		return p, false
	}
	p.Price = price
	return p, true
}
