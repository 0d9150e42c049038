package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	adminapp "github.com/dwikikusuma/storefront/internal/admin/app"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	identityapp "github.com/dwikikusuma/storefront/internal/identity/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type Deps struct {
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Orders   *orderapp.Service
	Identity *identityapp.Service
	Admin    *adminapp.Service
	Sessions *session.Manager

	// Ready backs /readyz. Nil means always ready.
	Ready func(ctx context.Context) error

	Cookie         CookieConfig
	RequestTimeout time.Duration
	Log            *slog.Logger
}

type Server struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	orders   *orderapp.Service
	identity *identityapp.Service
	admin    *adminapp.Service
	sessions *session.Manager

	ready   func(ctx context.Context) error
	cookie  CookieConfig
	timeout time.Duration
	log     *slog.Logger
}

func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	if d.Cookie.Name == "" {
		d.Cookie.Name = "storefront_session"
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 30 * time.Second
	}
	return &Server{
		catalog:  d.Catalog,
		cart:     d.Cart,
		orders:   d.Orders,
		identity: d.Identity,
		admin:    d.Admin,
		sessions: d.Sessions,
		ready:    d.Ready,
		cookie:   d.Cookie,
		timeout:  d.RequestTimeout,
		log:      log,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.propagateRequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/products", s.handleProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleCart)
			r.Post("/items", s.handleAddItem)
			r.Post("/items/{id}/increment", s.handleIncrement)
			r.Post("/items/{id}/decrement", s.handleDecrement)
			r.Delete("/items/{id}", s.handleRemoveItem)
		})

		r.Post("/login", s.handleLogin)
		r.Post("/register", s.handleRegister)
		r.Post("/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireLogin)
			r.Get("/me", s.handleMe)
			r.Get("/orders", s.handleOrderHistory)
			r.Post("/checkout", s.handleCheckout)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Get("/overview", s.handleOverview)

			r.Get("/products", s.handleAdminProducts)
			r.Post("/products", s.handleCreateProduct)
			r.Patch("/products/{id}", s.handleUpdateProduct)
			r.Delete("/products/{id}", s.handleDeleteProduct)

			r.Get("/users", s.handleAdminUsers)
			r.Post("/users", s.handleCreateUser)
			r.Patch("/users/{id}", s.handleUpdateUser)
			r.Delete("/users/{id}", s.handleDeleteUser)

			r.Get("/orders", s.handleAdminOrders)
			r.Patch("/orders/{id}", s.handleSetOrderStatus)
		})
	})

	return r
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			s.log.Warn("not ready", slog.Any("err", err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
