package web

import (
	"net/http"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/go-chi/chi/v5"
)

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListAll(r.Context())
	if err != nil {
		s.fail(w, r, "fetch products", err)
		return
	}
	respondJSON(w, http.StatusOK, productsResponse{Products: products})
}

func (s *Server) handleAdminProducts(w http.ResponseWriter, r *http.Request) {
	page, err := s.catalog.List(r.Context(), currentSession(r).Token(), pageQuery(r, "search"))
	if err != nil {
		s.fail(w, r, "fetch products", err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var f domain.ProductForm
	if err := decodeJSON(r, &f); err != nil {
		s.fail(w, r, "add product", err)
		return
	}
	if err := s.catalog.Create(r.Context(), currentSession(r).Token(), f); err != nil {
		s.fail(w, r, "add product", err)
		return
	}
	respondJSON(w, http.StatusCreated, messageResponse{Message: "Product added successfully"})
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var f domain.ProductForm
	if err := decodeJSON(r, &f); err != nil {
		s.fail(w, r, "update product", err)
		return
	}
	if err := s.catalog.Update(r.Context(), currentSession(r).Token(), chi.URLParam(r, "id"), f); err != nil {
		s.fail(w, r, "update product", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Product updated successfully"})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := s.catalog.Delete(r.Context(), currentSession(r).Token(), chi.URLParam(r, "id"), confirmed(r))
	if err != nil {
		s.fail(w, r, "delete product", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
