package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	identityapp "github.com/dwikikusuma/storefront/internal/identity/app"
	"github.com/dwikikusuma/storefront/internal/session"
	"github.com/dwikikusuma/storefront/pkg/confirm"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/dwikikusuma/storefront/pkg/validation"
	"github.com/go-chi/chi/v5/middleware"
)

type errorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Prompt string `json:"prompt,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Default().Error("encode response", slog.Any("err", err))
	}
}

// httpStatusFromErr maps the error taxonomy onto HTTP.
func httpStatusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, validation.ErrInvalid), errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, confirm.ErrRequired):
		return http.StatusPreconditionRequired, "CONFIRMATION_REQUIRED"
	case errors.Is(err, cartapp.ErrSubmitInProgress):
		return http.StatusConflict, "SUBMIT_IN_PROGRESS"
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, identityapp.ErrLoginFailed) && !upstreamDown(err):
		return http.StatusUnauthorized, "LOGIN_FAILED"
	case errors.Is(err, errForbidden):
		return http.StatusForbidden, "PERMISSION_DENIED"
	case errors.Is(err, catalogapp.ErrNotFound), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, identityapp.ErrRegisterFailed) && !upstreamDown(err):
		return http.StatusBadRequest, "REGISTRATION_FAILED"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "TIMEOUT"
	case errors.Is(err, storeapi.ErrTransport):
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// upstreamDown reports a store API call that never got an answer or got a
// server-side failure, as opposed to a rejection of the request.
func upstreamDown(err error) bool {
	var apiErr *storeapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == 0 || apiErr.Status >= http.StatusInternalServerError
}

// fail writes the failure of action as a generic message. Only local form
// validation and confirmation prompts reach the client verbatim.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, code := httpStatusFromErr(err)
	resp := errorResponse{Error: "Failed to " + action + ". Please try again.", Code: code}

	var fe *validation.FieldError
	switch {
	case errors.As(err, &fe):
		resp.Error = fe.Error()
	case status == http.StatusPreconditionRequired:
		resp.Prompt = confirm.Prompt(err)
		resp.Error = resp.Prompt
	case status == http.StatusConflict:
		resp.Error = "An order is already being submitted."
	case errors.Is(err, errUnauthenticated):
		resp.Error = "Please log in to continue."
	case status == http.StatusForbidden:
		resp.Error = "You do not have access to this page."
	}

	attrs := []any{
		slog.String("action", action),
		slog.Int("status", status),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("err", err),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", attrs...)
	} else {
		s.log.Info("request rejected", attrs...)
	}

	respondJSON(w, status, resp)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &validation.FieldError{Field: "body", Reason: "must be a valid JSON object"}
	}
	return nil
}

// pageQuery reads page, limit and the listing's filter parameter.
func pageQuery(r *http.Request, filterKey string) paging.Query {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return paging.Query{Page: page, Limit: limit, Filter: q.Get(filterKey)}
}

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}
