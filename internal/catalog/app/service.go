package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/confirm"
	"github.com/dwikikusuma/storefront/pkg/paging"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const deletePrompt = "Are you sure you want to delete this product?"

type Service struct {
	gw ProductGateway
}

func NewService(gw ProductGateway) *Service {
	return &Service{gw: gw}
}

// ListAll is the storefront listing. An empty catalog is not an error.
func (s *Service) ListAll(ctx context.Context) ([]domain.Product, error) {
	products, err := s.gw.All(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Find looks a product up in the storefront listing.
func (s *Service) Find(ctx context.Context, id string) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, ErrInvalidInput
	}
	products, err := s.gw.All(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (s *Service) List(ctx context.Context, token string, q paging.Query) (paging.Page[domain.Product], error) {
	q = q.Normalize()
	q.Filter = strings.TrimSpace(q.Filter)

	products, total, err := s.gw.List(ctx, token, q)
	if err != nil {
		return paging.Page[domain.Product]{}, err
	}
	return paging.New(products, q, total), nil
}

func (s *Service) Create(ctx context.Context, token string, f domain.ProductForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return s.gw.Create(ctx, token, f.Normalized())
}

func (s *Service) Update(ctx context.Context, token, id string, f domain.ProductForm) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if err := f.Validate(); err != nil {
		return err
	}
	return s.gw.Update(ctx, token, id, f.Normalized())
}

// Delete removes a product once the caller has confirmed.
func (s *Service) Delete(ctx context.Context, token, id string, confirmed bool) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if err := confirm.Gate(confirmed, deletePrompt); err != nil {
		return err
	}
	return s.gw.Delete(ctx, token, id)
}
