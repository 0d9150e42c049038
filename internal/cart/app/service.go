package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/dwikikusuma/storefront/pkg/validation"
)

var (
	ErrEmptyCart        = &validation.FieldError{Field: "items", Reason: "cart is empty"}
	ErrSubmitInProgress = errors.New("order submission already in progress")
	ErrSubmitFailed     = errors.New("failed to place order")
)

// Service mediates order submission. At most one submission per key (the
// owning session) is in flight at a time; a second call while one is
// outstanding is rejected, not queued.
type Service struct {
	placer  OrderPlacer
	timeout time.Duration
	log     *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(placer OrderPlacer, timeout time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		placer:   placer,
		timeout:  timeout,
		log:      log,
		inflight: make(map[string]struct{}),
	}
}

// Submit sends a snapshot of c to the order service. On success c is cleared
// and the placed order returned. On any failure c is left exactly as it was.
func (s *Service) Submit(ctx context.Context, key string, c *domain.Cart, buyer domain.Buyer) (domain.PlacedOrder, error) {
	if err := buyer.Validate(); err != nil {
		return domain.PlacedOrder{}, err
	}
	if c.IsEmpty() {
		return domain.PlacedOrder{}, ErrEmptyCart
	}

	if !s.acquire(key) {
		return domain.PlacedOrder{}, ErrSubmitInProgress
	}
	defer s.release(key)

	draft := c.Draft(buyer)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	placed, err := s.placer.PlaceOrder(ctx, draft)
	if err != nil {
		s.log.Warn("place order failed",
			slog.String("buyer_id", buyer.ID),
			slog.Int("items", len(draft.Items)),
			slog.Any("err", err),
		)
		return domain.PlacedOrder{}, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	c.Clear()
	s.log.Info("order placed",
		slog.String("order_id", placed.ID),
		slog.String("buyer_id", buyer.ID),
		slog.String("order_value", draft.Subtotal.StringFixed(2)),
	)
	return placed, nil
}

// Submitting reports whether a submission for key is in flight.
func (s *Service) Submitting(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[key]
	return ok
}

func (s *Service) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()
}
