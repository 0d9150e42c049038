package web

import (
	"net/http"

	"github.com/dwikikusuma/storefront/internal/identity/domain"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.admin.Overview(r.Context(), currentSession(r).Token())
	if err != nil {
		s.fail(w, r, "load dashboard", err)
		return
	}
	respondJSON(w, http.StatusOK, ov)
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	page, err := s.identity.ListUsers(r.Context(), currentSession(r).Token(), pageQuery(r, "search"))
	if err != nil {
		s.fail(w, r, "fetch users", err)
		return
	}

	respondJSON(w, http.StatusOK, paging.Map(page, newUserView))
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var f domain.UserForm
	if err := decodeJSON(r, &f); err != nil {
		s.fail(w, r, "add user", err)
		return
	}
	if err := s.identity.CreateUser(r.Context(), currentSession(r).Token(), f); err != nil {
		s.fail(w, r, "add user", err)
		return
	}
	respondJSON(w, http.StatusCreated, messageResponse{Message: "User added successfully"})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var f domain.UserForm
	if err := decodeJSON(r, &f); err != nil {
		s.fail(w, r, "update user", err)
		return
	}
	if err := s.identity.UpdateUser(r.Context(), currentSession(r).Token(), chi.URLParam(r, "id"), f); err != nil {
		s.fail(w, r, "update user", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "User updated successfully"})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	err := s.identity.DeleteUser(r.Context(), currentSession(r).Token(), chi.URLParam(r, "id"), confirmed(r))
	if err != nil {
		s.fail(w, r, "delete user", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
