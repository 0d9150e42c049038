package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	identity "github.com/dwikikusuma/storefront/internal/identity/domain"
	"github.com/google/uuid"
)

// Manager loads and saves sessions and serialises mutations of the same
// session inside this process.
type Manager struct {
	store Store
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewManager(store Store, ttl time.Duration, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		store: store,
		ttl:   ttl,
		log:   log,
		now:   time.Now,
		locks: make(map[string]*keyLock),
	}
}

func (m *Manager) Create(ctx context.Context) (*Session, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Cart:      cartdomain.NewCart(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	return s, nil
}

// Load returns the session. A login whose bearer token has expired is
// dropped; the cart survives.
func (m *Manager) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Cart == nil {
		s.Cart = cartdomain.NewCart()
	}
	if s.User != nil && s.User.Expired(m.now()) {
		m.log.Info("session login expired", slog.String("session_id", id))
		s.User = nil
	}
	return s, nil
}

// LoadOrCreate returns the session for id, or a fresh one if id is unknown.
func (m *Manager) LoadOrCreate(ctx context.Context, id string) (*Session, error) {
	s, err := m.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return m.Create(ctx)
	}
	return s, err
}

// Mutate applies fn to the session under a per-session lock and saves it.
// Nothing is saved if fn returns an error.
func (m *Manager) Mutate(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	unlock := m.lock(id)
	defer unlock()

	s, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.UpdatedAt = m.now()
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	return s, nil
}

// Login moves the visitor to a fresh session id carrying the same cart and
// drops the old id, so an id issued before login never carries a login.
// Callers must hand the returned id to the client.
func (m *Manager) Login(ctx context.Context, id string, u identity.User) (*Session, error) {
	unlock := m.lock(id)
	defer unlock()

	old, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		User:      &u,
		Cart:      old.Cart,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	if err := m.store.Delete(ctx, id); err != nil {
		// The old id holds no login; it expires with its TTL.
		m.log.Warn("drop pre-login session",
			slog.String("session_id", id),
			slog.Any("err", err),
		)
	}
	return s, nil
}

// Logout forgets the user and empties the cart.
func (m *Manager) Logout(ctx context.Context, id string) (*Session, error) {
	return m.Mutate(ctx, id, func(s *Session) error {
		s.User = nil
		s.Cart.Clear()
		return nil
	})
}

func (m *Manager) lock(id string) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &keyLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}
