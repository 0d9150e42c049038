package web

import (
	"net/http"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/go-chi/chi/v5"
)

type orderItemView struct {
	domain.Item
	LineTotal string `json:"lineTotal"`
}

// orderView shadows the embedded Items so each line carries its total.
type orderView struct {
	domain.Order
	Items []orderItemView `json:"items"`
}

type ordersResponse struct {
	Orders []orderView `json:"orders"`
}

func newOrderView(o domain.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemView{Item: it, LineTotal: it.LineTotal().StringFixed(2)})
	}
	return orderView{Order: o, Items: items}
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.History(r.Context(), currentSession(r).User.Email)
	if err != nil {
		s.fail(w, r, "fetch orders", err)
		return
	}
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	respondJSON(w, http.StatusOK, ordersResponse{Orders: views})
}

func (s *Server) handleAdminOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.orders.List(r.Context(), currentSession(r).Token(), pageQuery(r, "status"))
	if err != nil {
		s.fail(w, r, "fetch orders", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleSetOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, "update order status", err)
		return
	}
	err := s.orders.SetStatus(r.Context(), currentSession(r).Token(), chi.URLParam(r, "id"), req.Status, confirmed(r))
	if err != nil {
		s.fail(w, r, "update order status", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Order status updated successfully"})
}
