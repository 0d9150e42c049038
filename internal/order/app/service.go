package app

import (
	"context"
	"strings"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/dwikikusuma/storefront/pkg/confirm"
	"github.com/dwikikusuma/storefront/pkg/paging"
	"github.com/dwikikusuma/storefront/pkg/validation"
)

type Service struct {
	gw OrderGateway
}

func NewService(gw OrderGateway) *Service {
	return &Service{gw: gw}
}

// History returns the buyer's own orders, newest first as the service sends
// them.
func (s *Service) History(ctx context.Context, email string) ([]domain.Order, error) {
	if err := validation.Required("email", email); err != nil {
		return nil, err
	}
	orders, err := s.gw.ByBuyer(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

type ListResult struct {
	paging.Page[domain.Order]
	Counts domain.Counts `json:"counts"`
}

// List is the admin order table. Filter is a status; empty means all.
func (s *Service) List(ctx context.Context, token string, q paging.Query) (ListResult, error) {
	q = q.Normalize()
	q.Filter = strings.ToLower(strings.TrimSpace(q.Filter))
	if q.Filter != "" {
		err := validation.OneOf("status", q.Filter, domain.StatusPending, domain.StatusCompleted, domain.StatusCancelled)
		if err != nil {
			return ListResult{}, err
		}
	}

	orders, total, err := s.gw.List(ctx, token, q)
	if err != nil {
		return ListResult{}, err
	}
	page := paging.New(orders, q, total)
	return ListResult{Page: page, Counts: domain.CountStatuses(page.Items)}, nil
}

// SetStatus moves an order to completed or cancelled once confirmed.
func (s *Service) SetStatus(ctx context.Context, token, id, status string, confirmed bool) error {
	status = strings.ToLower(strings.TrimSpace(status))
	err := validation.Check(
		validation.Required("id", id),
		validation.OneOf("status", status, domain.StatusCompleted, domain.StatusCancelled),
	)
	if err != nil {
		return err
	}
	if err := confirm.Gate(confirmed, "Are you sure you want to mark this order as "+status+"?"); err != nil {
		return err
	}
	return s.gw.SetStatus(ctx, token, id, status)
}
