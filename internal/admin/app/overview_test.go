package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	identity "github.com/dwikikusuma/storefront/internal/identity/domain"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	order "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct{ total int }

func (f fakeProducts) List(ctx context.Context, token string, q paging.Query) (paging.Page[catalog.Product], error) {
	return paging.New[catalog.Product](nil, q, f.total), nil
}

type fakeUsers struct {
	total int
	err   error
}

func (f fakeUsers) ListUsers(ctx context.Context, token string, q paging.Query) (paging.Page[identity.User], error) {
	if f.err != nil {
		return paging.Page[identity.User]{}, f.err
	}
	return paging.New[identity.User](nil, q, f.total), nil
}

type fakeOrders struct {
	mu      sync.Mutex
	filters []string
}

func (f *fakeOrders) List(ctx context.Context, token string, q paging.Query) (orderapp.ListResult, error) {
	f.mu.Lock()
	f.filters = append(f.filters, q.Filter)
	f.mu.Unlock()

	total := 40
	if q.Filter == order.StatusPending {
		total = 7
	}
	res := orderapp.ListResult{Page: paging.New[order.Order](nil, q, total)}
	if q.Limit == paging.MaxLimit {
		res.Counts = order.CountStatuses([]order.Order{
			{Status: order.StatusCompleted, OrderValue: decimal.RequireFromString("63.99")},
			{Status: order.StatusPending, OrderValue: decimal.RequireFromString("36.01")},
		})
	}
	return res, nil
}

func TestOverview(t *testing.T) {
	orders := &fakeOrders{}
	svc := NewService(fakeProducts{total: 12}, orders, fakeUsers{total: 5})

	got, err := svc.Overview(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Products)
	assert.Equal(t, 5, got.Users)
	assert.Equal(t, 40, got.Orders)
	assert.Equal(t, 7, got.PendingOrders)
	assert.Equal(t, "100.00", got.Revenue.StringFixed(2))
	assert.ElementsMatch(t, []string{"", "", "pending"}, orders.filters)
}

func TestOverviewFailsAsAWhole(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(fakeProducts{total: 12}, &fakeOrders{}, fakeUsers{err: boom})

	got, err := svc.Overview(context.Background(), "tok")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Overview{}, got)
}
