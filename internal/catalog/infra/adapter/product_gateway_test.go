package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGateway(t *testing.T) {
	var created storeapi.ProductInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/products/all":
			_, _ = w.Write([]byte(`{"products":[{"_id":"p1","productName":"Mug","price":"12.50"},{"_id":"p2","productName":"Odd"},{"_id":"p3","productName":"Junk","price":null},{"_id":"p4","productName":"Neg","price":-1}]}`))
		case r.URL.Path == "/api/products/" && r.Method == http.MethodGet:
			assert.Equal(t, "mug", r.URL.Query().Get("search"))
			_, _ = w.Write([]byte(`{"products":[{"_id":"p1","productName":"Mug","price":12.5},{"_id":"p2","productName":"Odd"}],"total":4}`))
		case r.URL.Path == "/api/products" && r.Method == http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	var logs bytes.Buffer
	gw := NewProductGateway(storeapi.New(srv.URL, time.Second), slog.New(slog.NewTextHandler(&logs, nil)))
	ctx := context.Background()

	all, err := gw.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "unpriced products never reach the storefront")
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "12.5", all[0].Price.String())
	assert.Contains(t, logs.String(), "product_id=p2")
	assert.Contains(t, logs.String(), "product_id=p3")
	assert.Contains(t, logs.String(), "product_id=p4")

	list, total, err := gw.List(ctx, "tok", paging.Query{Page: 1, Limit: 10, Filter: "mug"})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, list, 2)
	assert.True(t, list[1].Price.IsZero())

	err = gw.Create(ctx, "tok", domain.ProductForm{ProductName: "Cap", Description: "d", Price: "9.5", ImgURL: "https://x.io/c.png"})
	require.NoError(t, err)
	assert.Equal(t, "Cap", created.Name)
	assert.Equal(t, json.Number("9.5"), created.Price)

	err = gw.Delete(ctx, "tok", "p1")
	assert.ErrorIs(t, err, storeapi.ErrTransport)
}
