package session

import (
	"context"
	"errors"
	"time"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	identity "github.com/dwikikusuma/storefront/internal/identity/domain"
)

var ErrNotFound = errors.New("session not found")

// Session is the state a single visitor owns: who they are and what is in
// their cart. Views receive it explicitly; nothing is held globally.
type Session struct {
	ID        string           `json:"id"`
	User      *identity.User   `json:"user,omitempty"`
	Cart      *cartdomain.Cart `json:"cart"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (s *Session) LoggedIn() bool {
	return s.User != nil && s.User.Token != ""
}

func (s *Session) IsAdmin() bool {
	return s.LoggedIn() && s.User.IsAdmin()
}

func (s *Session) Token() string {
	if s.User == nil {
		return ""
	}
	return s.User.Token
}

// Buyer is the checkout identity; empty fields when logged out.
func (s *Session) Buyer() cartdomain.Buyer {
	if s.User == nil {
		return cartdomain.Buyer{}
	}
	return cartdomain.Buyer{ID: s.User.ID, Email: s.User.Email}
}

// Store persists sessions by id. Get returns ErrNotFound for unknown or
// expired ids.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
