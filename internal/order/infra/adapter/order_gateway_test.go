package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByBuyerMapsOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/ann@example.com", r.URL.Path)
		_, _ = w.Write([]byte(`[{
			"_id":"o1","userId":"u1","email":"ann@example.com","orderValue":63.99,
			"items":[{"_id":"p1","productName":"Mug","price":25,"qty":2}],
			"createdAt":"2026-03-01T10:00:00Z"
		}]`))
	}))
	defer srv.Close()

	gw := NewOrderGateway(storeapi.New(srv.URL, time.Second))
	orders, err := gw.ByBuyer(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, domain.StatusPending, o.Status, "missing status reads as pending")
	assert.Equal(t, "63.99", o.OrderValue.StringFixed(2))
	require.Len(t, o.Items, 1)
	assert.Equal(t, "50.00", o.Items[0].LineTotal().StringFixed(2))
}
