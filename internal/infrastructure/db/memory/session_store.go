// Package memory provides an in-process session store for development and
// tests, mirroring the Redis store's idle-timeout semantics.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

type entry struct {
	session  domain.Session
	deadline time.Time
}

// SessionStore keeps sessions in a mutex-guarded map keyed by the token's
// SHA-256 digest. Expired entries are pruned lazily on access.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	// now is swappable in tests.
	now func() time.Time
}

func NewSessionStore(idleTTL time.Duration) *SessionStore {
	return &SessionStore{
		entries: make(map[string]entry),
		ttl:     idleTTL,
		now:     time.Now,
	}
}

func (s *SessionStore) Establish(_ context.Context, session domain.Session) (string, error) {
	token, err := domain.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[domain.HashSessionToken(token)] = entry{
		session:  session,
		deadline: s.now().Add(s.ttl),
	}
	return token, nil
}

func (s *SessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	key := domain.HashSessionToken(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.now().After(e.deadline) {
		delete(s.entries, key)
		return nil, domain.ErrSessionNotFound
	}

	// Refresh the idle deadline on every hit.
	e.deadline = s.now().Add(s.ttl)
	s.entries[key] = e

	session := e.session
	return &session, nil
}

func (s *SessionStore) Terminate(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, domain.HashSessionToken(token))
	return nil
}
