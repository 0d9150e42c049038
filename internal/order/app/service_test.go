package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/confirm"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	orders []domain.Order
	total  int
	err    error

	lastQuery paging.Query
	updates   []string
}

func (f *fakeGateway) ByBuyer(ctx context.Context, email string) ([]domain.Order, error) {
	return f.orders, f.err
}

func (f *fakeGateway) List(ctx context.Context, token string, q paging.Query) ([]domain.Order, int, error) {
	f.lastQuery = q
	return f.orders, f.total, f.err
}

func (f *fakeGateway) SetStatus(ctx context.Context, token, id, status string) error {
	f.updates = append(f.updates, id+"="+status)
	return f.err
}

func TestHistory(t *testing.T) {
	t.Run("email required", func(t *testing.T) {
		_, err := NewService(&fakeGateway{}).History(context.Background(), "")
		assert.ErrorIs(t, err, validation.ErrInvalid)
	})

	t.Run("no orders is an empty list", func(t *testing.T) {
		orders, err := NewService(&fakeGateway{}).History(context.Background(), "a@b.c")
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := NewService(&fakeGateway{err: boom}).History(context.Background(), "a@b.c")
		assert.ErrorIs(t, err, boom)
	})
}

func TestListCountsAndFilter(t *testing.T) {
	gw := &fakeGateway{
		orders: []domain.Order{
			{ID: "1", Status: domain.StatusPending, OrderValue: decimal.RequireFromString("63.99")},
			{ID: "2", Status: domain.StatusPending, OrderValue: decimal.RequireFromString("20")},
			{ID: "3", Status: domain.StatusCompleted, OrderValue: decimal.RequireFromString("10.01")},
			{ID: "4", Status: domain.StatusCancelled},
		},
		total: 2,
	}
	svc := NewService(gw)

	res, err := svc.List(context.Background(), "tok", paging.Query{Page: 1, Limit: 25, Filter: " Pending "})
	require.NoError(t, err)
	assert.Equal(t, "pending", gw.lastQuery.Filter)
	assert.Equal(t, 4, res.Counts.Total)
	assert.Equal(t, 2, res.Counts.Pending)
	assert.Equal(t, 1, res.Counts.Completed)
	assert.Equal(t, 1, res.Counts.Cancelled)
	assert.Equal(t, "94.00", res.Counts.Revenue.StringFixed(2))
	assert.Equal(t, 2, res.TotalPages)

	_, err = svc.List(context.Background(), "tok", paging.Query{Filter: "shipped"})
	assert.ErrorIs(t, err, validation.ErrInvalid)
}

func TestListCountsEmptyPage(t *testing.T) {
	res, err := NewService(&fakeGateway{}).List(context.Background(), "tok", paging.Query{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Counts.Total)
	assert.Equal(t, "0", res.Counts.Revenue.String())
}

func TestSetStatus(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw)
	ctx := context.Background()

	err := svc.SetStatus(ctx, "tok", "o1", "completed", false)
	require.ErrorIs(t, err, confirm.ErrRequired)
	assert.Equal(t, "Are you sure you want to mark this order as completed?", confirm.Prompt(err))

	assert.ErrorIs(t, svc.SetStatus(ctx, "tok", "o1", "pending", true), validation.ErrInvalid)
	assert.ErrorIs(t, svc.SetStatus(ctx, "tok", "", "completed", true), validation.ErrInvalid)
	assert.Empty(t, gw.updates)

	require.NoError(t, svc.SetStatus(ctx, "tok", "o1", "Cancelled", true))
	assert.Equal(t, []string{"o1=cancelled"}, gw.updates)
}
