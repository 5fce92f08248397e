package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopilens/storefront-api/internal/domains/users/ports"
)

// DefaultSessionTTL bounds in-memory session lifetime.
const DefaultSessionTTL = 24 * time.Hour

var _ ports.SessionStore = (*SessionStore)(nil)

type session struct {
	username  string
	expiresAt time.Time
}

// SessionStore is an in-memory SessionStore implementation.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]session{},
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
}

func (s *SessionStore) Create(_ context.Context, username string) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{username: username, expiresAt: s.now().Add(s.ttl)}
	return token, nil
}

func (s *SessionStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", ports.ErrSessionNotFound
	}
	if s.now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", ports.ErrSessionNotFound
	}
	return sess.username, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
