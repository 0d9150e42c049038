package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the external store API: identity, catalog and orders.
// It never retries; every failure is returned to the caller as an *Error.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestIDKey struct{}

// WithRequestID makes outgoing calls carry id in X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, op, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("store api call failed", slog.String("op", op), slog.Any("err", err))
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("store api call",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Op: op, Status: resp.StatusCode}
		var eb errorBody
		if raw, rerr := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); rerr == nil && json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	// An empty 2xx body leaves out at its zero value.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func pageValues(q PageQuery, filterKey string) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set(filterKey, q.Filter)
	return v.Encode()
}

// Identity

func (c *Client) Login(ctx context.Context, in LoginRequest) (User, error) {
	var u User
	err := c.do(ctx, "login", http.MethodPost, "/api/users/login", "", in, &u)
	return u, err
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) error {
	return c.do(ctx, "register", http.MethodPost, "/api/users/register", "", in, nil)
}

func (c *Client) Users(ctx context.Context, token string, q PageQuery) (UserPage, error) {
	var page UserPage
	err := c.do(ctx, "list users", http.MethodGet, "/api/users/?"+pageValues(q, "search"), token, nil, &page)
	return page, err
}

func (c *Client) CreateUser(ctx context.Context, token string, in UserInput) error {
	return c.do(ctx, "create user", http.MethodPost, "/api/users", token, in, nil)
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, in UserInput) error {
	return c.do(ctx, "update user", http.MethodPatch, "/api/users/"+url.PathEscape(id), token, in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete user", http.MethodDelete, "/api/users/"+url.PathEscape(id), token, nil, nil)
}

// Catalog

func (c *Client) AllProducts(ctx context.Context) ([]Product, error) {
	var list ProductList
	if err := c.do(ctx, "list all products", http.MethodGet, "/api/products/all", "", nil, &list); err != nil {
		return nil, err
	}
	return list.Products, nil
}

func (c *Client) Products(ctx context.Context, token string, q PageQuery) (ProductPage, error) {
	var page ProductPage
	err := c.do(ctx, "list products", http.MethodGet, "/api/products/?"+pageValues(q, "search"), token, nil, &page)
	return page, err
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) error {
	return c.do(ctx, "create product", http.MethodPost, "/api/products", token, in, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in ProductInput) error {
	return c.do(ctx, "update product", http.MethodPatch, "/api/products/"+url.PathEscape(id), token, in, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete product", http.MethodDelete, "/api/products/"+url.PathEscape(id), token, nil, nil)
}

// Orders

func (c *Client) PlaceOrder(ctx context.Context, in OrderInput) (Order, error) {
	var o Order
	err := c.do(ctx, "place order", http.MethodPost, "/api/orders", "", in, &o)
	return o, err
}

func (c *Client) OrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	var orders []Order
	err := c.do(ctx, "list buyer orders", http.MethodGet, "/api/orders/"+url.PathEscape(email), "", nil, &orders)
	return orders, err
}

func (c *Client) Orders(ctx context.Context, token string, q PageQuery) (OrderPage, error) {
	var page OrderPage
	err := c.do(ctx, "list orders", http.MethodGet, "/api/orders/?"+pageValues(q, "status"), token, nil, &page)
	return page, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id, status string) error {
	return c.do(ctx, "update order", http.MethodPatch, "/api/orders/"+url.PathEscape(id), token, StatusUpdate{Status: status}, nil)
}
