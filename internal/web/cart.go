package web

import (
	"log/slog"
	"net/http"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/internal/session"
	"github.com/go-chi/chi/v5"
)

type cartItemView struct {
	cartdomain.LineItem
	LineTotal string `json:"lineTotal"`
}

type cartResponse struct {
	Items      []cartItemView     `json:"items"`
	Summary    cartdomain.Summary `json:"summary"`
	Submitting bool               `json:"submitting"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

type checkoutResponse struct {
	Message string                 `json:"message"`
	Order   cartdomain.PlacedOrder `json:"order"`
}

func (s *Server) cartView(sess *session.Session) cartResponse {
	items := sess.Cart.Items()
	views := make([]cartItemView, 0, len(items))
	for _, it := range items {
		views = append(views, cartItemView{LineItem: it, LineTotal: it.LineTotal().StringFixed(2)})
	}
	return cartResponse{
		Items:      views,
		Summary:    sess.Cart.Summary(),
		Submitting: s.cart.Submitting(sess.ID),
	}
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.cartView(currentSession(r)))
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, "add item to cart", err)
		return
	}

	p, err := s.catalog.Find(r.Context(), req.ProductID)
	if err != nil {
		s.fail(w, r, "add item to cart", err)
		return
	}

	sess, err := s.sessions.Mutate(r.Context(), currentSession(r).ID, func(sess *session.Session) error {
		sess.Cart.Add(cartdomain.Product{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL, Price: p.Price})
		return nil
	})
	if err != nil {
		s.fail(w, r, "add item to cart", err)
		return
	}
	respondJSON(w, http.StatusOK, s.cartView(sess))
}

func (s *Server) handleIncrement(w http.ResponseWriter, r *http.Request) {
	s.mutateCart(w, r, "update cart", func(c *cartdomain.Cart, id string) { c.Increment(id) })
}

func (s *Server) handleDecrement(w http.ResponseWriter, r *http.Request) {
	s.mutateCart(w, r, "update cart", func(c *cartdomain.Cart, id string) { c.Decrement(id) })
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	s.mutateCart(w, r, "remove item from cart", func(c *cartdomain.Cart, id string) { c.Remove(id) })
}

func (s *Server) mutateCart(w http.ResponseWriter, r *http.Request, action string, fn func(*cartdomain.Cart, string)) {
	productID := chi.URLParam(r, "id")
	sess, err := s.sessions.Mutate(r.Context(), currentSession(r).ID, func(sess *session.Session) error {
		fn(sess.Cart, productID)
		return nil
	})
	if err != nil {
		s.fail(w, r, action, err)
		return
	}
	respondJSON(w, http.StatusOK, s.cartView(sess))
}

// handleCheckout submits the cart as loaded for this request. Once the
// order service has accepted the order, the ordered lines leave the stored
// cart; lines added while the order was in flight stay.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	ordered := sess.Cart.Items()

	placed, err := s.cart.Submit(r.Context(), sess.ID, sess.Cart, sess.Buyer())
	if err != nil {
		s.fail(w, r, "place order", err)
		return
	}

	_, err = s.sessions.Mutate(r.Context(), sess.ID, func(stored *session.Session) error {
		for _, li := range ordered {
			stored.Cart.Remove(li.ProductID)
		}
		return nil
	})
	if err != nil {
		// The order exists; a stale cart is the lesser failure.
		s.log.Error("clear cart after order",
			slog.String("session_id", sess.ID),
			slog.String("order_id", placed.ID),
			slog.Any("err", err),
		)
	}

	respondJSON(w, http.StatusCreated, checkoutResponse{Message: "Order placed successfully", Order: placed})
}
