package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", time.Second)
}

func TestLoginSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var in LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "a@b.c", in.Email)

		_ = json.NewEncoder(w).Encode(User{ID: "u1", Email: in.Email, Role: "admin", Token: "tok"})
	})

	u, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "tok", u.Token)
}

func TestNon2xxCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid password"}`))
	})

	_, err := c.Login(context.Background(), LoginRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Equal(t, "Invalid password", ServerMessage(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "login", apiErr.Op)
}

func TestNon2xxWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Register(context.Background(), RegisterRequest{})
	assert.ErrorIs(t, err, ErrTransport)
	assert.Empty(t, ServerMessage(err))
}

func TestNetworkFailureIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	_, err := c.AllProducts(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestAllProducts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/all", r.URL.Path)
		_, _ = w.Write([]byte(`{"products":[{"_id":"p1","productName":"Mug","price":12.5,"imgUrl":"x"}]}`))
	})

	products, err := c.AllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)
	assert.Equal(t, json.Number("12.5"), products[0].Price)
}

func TestPagedQueriesAndBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("limit"))
		switch r.URL.Path {
		case "/api/orders/":
			assert.Equal(t, "pending", q.Get("status"))
			_, _ = w.Write([]byte(`{"orders":[{"_id":"o1","status":"pending","orderValue":63.99}],"total":3}`))
		case "/api/users/":
			assert.Equal(t, "ann", q.Get("search"))
			_, _ = w.Write([]byte(`{"users":[{"_id":"u1","email":"ann@example.com"}],"total":1}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	orders, err := c.Orders(context.Background(), "admin-token", PageQuery{Page: 2, Limit: 25, Filter: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 3, orders.Total)
	assert.Equal(t, "o1", orders.Orders[0].ID)

	users, err := c.Users(context.Background(), "admin-token", PageQuery{Page: 2, Limit: 25, Filter: "ann"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", users.Users[0].Email)
}

func TestPlaceOrderBodyAndEmptyResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "u1", raw["userId"])
		assert.Equal(t, "u1@example.com", raw["email"])
		assert.Equal(t, 50.0, raw["orderValue"], "orderValue is a JSON number")
		items := raw["items"].([]any)
		assert.Equal(t, 2.0, items[0].(map[string]any)["qty"])

		w.WriteHeader(http.StatusCreated)
	})

	o, err := c.PlaceOrder(context.Background(), OrderInput{
		UserID:     "u1",
		Email:      "u1@example.com",
		OrderValue: "50",
		Items:      []OrderItem{{ProductID: "p1", Name: "Mug", Price: "25", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Empty(t, o.ID)
}

func TestRequestIDPropagates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := WithRequestID(context.Background(), "req-42")
	orders, err := c.OrdersByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMutationsHitExpectedRoutes(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	require.NoError(t, c.CreateProduct(ctx, "t", ProductInput{Name: "x", Price: "1"}))
	require.NoError(t, c.UpdateProduct(ctx, "t", "p1", ProductInput{Name: "x", Price: "1"}))
	require.NoError(t, c.DeleteProduct(ctx, "t", "p1"))
	require.NoError(t, c.CreateUser(ctx, "t", UserInput{Email: "a@b.c"}))
	require.NoError(t, c.UpdateUser(ctx, "t", "u1", UserInput{Email: "a@b.c"}))
	require.NoError(t, c.DeleteUser(ctx, "t", "u1"))
	require.NoError(t, c.UpdateOrderStatus(ctx, "t", "o1", "completed"))

	assert.Equal(t, []string{
		"POST /api/products",
		"PATCH /api/products/p1",
		"DELETE /api/products/p1",
		"POST /api/users",
		"PATCH /api/users/u1",
		"DELETE /api/users/u1",
		"PATCH /api/orders/o1",
	}, seen)
}
