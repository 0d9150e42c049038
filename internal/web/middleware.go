package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dwikikusuma/storefront/internal/session"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey int

const sessionKey ctxKey = iota

var (
	errUnauthenticated = errors.New("login required")
	errForbidden       = errors.New("admin role required")
)

// propagateRequestID echoes the request id and forwards it to the store API.
func (s *Server) propagateRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := storeapi.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// withSession loads the visitor's session, creating one and setting the
// cookie when the request carries none or an unknown id.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(s.cookie.Name); err == nil {
			id = c.Value
		}

		sess, err := s.sessions.LoadOrCreate(r.Context(), id)
		if err != nil {
			s.fail(w, r, "load your session", err)
			return
		}
		if sess.ID != id {
			s.setCookie(w, sess.ID)
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !currentSession(r).LoggedIn() {
			s.fail(w, r, "authenticate", errUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(r)
		switch {
		case !sess.LoggedIn():
			s.fail(w, r, "authenticate", errUnauthenticated)
		case !sess.IsAdmin():
			s.fail(w, r, "authorize", errForbidden)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (s *Server) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentSession is the snapshot loaded for this request. Changes go through
// the session manager, never through this value.
func currentSession(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey).(*session.Session)
	if sess == nil {
		return &session.Session{}
	}
	return sess
}
