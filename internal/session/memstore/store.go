package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/session"
)

type entry struct {
	data    []byte
	expires time.Time
}

// Store keeps sessions in process memory. Values are stored encoded so
// callers never share a *Session with the store.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *Store) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && !e.expires.IsZero() && !s.now().Before(e.expires) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, session.ErrNotFound
	}

	var sess session.Session
	if err := json.Unmarshal(e.data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return &sess, nil
}

// Save stores s; a zero ttl keeps it until deleted.
func (s *Store) Save(ctx context.Context, sess *session.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}
	e := entry{data: data}
	if ttl > 0 {
		e.expires = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[sess.ID] = e
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if !e.expires.IsZero() && !now.Before(e.expires) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}
