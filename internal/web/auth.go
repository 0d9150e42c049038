package web

import (
	"log/slog"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/identity/domain"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
)

// userView is the session user without its bearer token.
type userView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func newUserView(u domain.User) userView {
	return userView{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, Role: u.Role}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var f domain.LoginForm
	if err := decodeJSON(r, &f); err != nil {
		s.fail(w, r, "log in", err)
		return
	}

	u, err := s.identity.Login(r.Context(), f)
	if err != nil {
		s.failWithServerMessage(w, r, "log in", err, "Login failed. Please check your credentials.")
		return
	}

	sess, err := s.sessions.Login(r.Context(), currentSession(r).ID, u)
	if err != nil {
		s.fail(w, r, "log in", err)
		return
	}
	s.setCookie(w, sess.ID)
	respondJSON(w, http.StatusOK, newUserView(u))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var f domain.RegisterForm
	if err := decodeJSON(r, &f); err != nil {
		s.fail(w, r, "register", err)
		return
	}
	if err := s.identity.Register(r.Context(), f); err != nil {
		s.failWithServerMessage(w, r, "register", err, "Registration failed. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, messageResponse{Message: "Registration successful. Please log in."})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessions.Logout(r.Context(), currentSession(r).ID); err != nil {
		s.fail(w, r, "log out", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newUserView(*currentSession(r).User))
}

// failWithServerMessage is fail for login and register, which show the
// identity provider's own message when it sent one.
func (s *Server) failWithServerMessage(w http.ResponseWriter, r *http.Request, action string, err error, fallback string) {
	status, code := httpStatusFromErr(err)
	if status == http.StatusBadRequest && code == "INVALID_ARGUMENT" {
		s.fail(w, r, action, err)
		return
	}
	msg := storeapi.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}
	s.log.Info("request rejected",
		slog.String("action", action),
		slog.Int("status", status),
		slog.Any("err", err),
	)
	respondJSON(w, status, errorResponse{Error: msg, Code: code})
}
