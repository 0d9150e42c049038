package app

import (
	"context"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	identityapp "github.com/dwikikusuma/storefront/internal/identity/app"
	identity "github.com/dwikikusuma/storefront/internal/identity/domain"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ProductLister interface {
	List(ctx context.Context, token string, q paging.Query) (paging.Page[catalog.Product], error)
}

type OrderLister interface {
	List(ctx context.Context, token string, q paging.Query) (orderapp.ListResult, error)
}

type UserLister interface {
	ListUsers(ctx context.Context, token string, q paging.Query) (paging.Page[identity.User], error)
}

var (
	_ ProductLister = (*catalogapp.Service)(nil)
	_ OrderLister   = (*orderapp.Service)(nil)
	_ UserLister    = (*identityapp.Service)(nil)
)

// Overview is the admin landing panel. The counts are the "total" the
// store API reports for the corresponding listing. The store API has no
// revenue aggregate, so Revenue sums the latest page of up to
// paging.MaxLimit orders.
type Overview struct {
	Products      int             `json:"products"`
	Users         int             `json:"users"`
	Orders        int             `json:"orders"`
	PendingOrders int             `json:"pendingOrders"`
	Revenue       decimal.Decimal `json:"revenue"`
}

type Service struct {
	products ProductLister
	orders   OrderLister
	users    UserLister
}

func NewService(products ProductLister, orders OrderLister, users UserLister) *Service {
	return &Service{products: products, orders: orders, users: users}
}

// Overview queries the listings concurrently; any failure fails the whole
// panel.
func (s *Service) Overview(ctx context.Context, token string) (Overview, error) {
	var out Overview
	first := paging.Query{Page: 1, Limit: 1}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.products.List(ctx, token, first)
		out.Products = p.TotalPages
		return err
	})
	g.Go(func() error {
		p, err := s.users.ListUsers(ctx, token, first)
		out.Users = p.TotalPages
		return err
	})
	g.Go(func() error {
		r, err := s.orders.List(ctx, token, first)
		out.Orders = r.TotalPages
		return err
	})
	g.Go(func() error {
		q := first
		q.Filter = domain.StatusPending
		r, err := s.orders.List(ctx, token, q)
		out.PendingOrders = r.TotalPages
		return err
	})
	g.Go(func() error {
		r, err := s.orders.List(ctx, token, paging.Query{Page: 1, Limit: paging.MaxLimit})
		out.Revenue = r.Counts.Revenue
		return err
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
