package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	userports "github.com/shopilens/storefront-api/internal/domains/users/ports"
)

// DefaultSessionTTL provides the fallback TTL when none is configured.
const DefaultSessionTTL = 24 * time.Hour

const keyPrefix = "storefront:session:"

var _ userports.SessionStore = (*SessionStore)(nil)

// SessionStore keeps session tokens in Redis with a TTL; expiry is enforced
// by the key TTL, no purger needed.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wires a Redis-backed session store. Caller owns the client lifecycle.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, username string) (string, error) {
	if err := s.ensureClient(); err != nil {
		return "", err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.New("username is required")
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	if err := s.ensureClient(); err != nil {
		return "", err
	}
	username, err := s.client.Get(ctx, keyPrefix+strings.TrimSpace(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", userports.ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureClient(); err != nil {
		return err
	}
	err := s.client.Del(ctx, keyPrefix+strings.TrimSpace(token)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (s *SessionStore) ensureClient() error {
	if s == nil || s.client == nil {
		return errors.New("redis session store not configured")
	}
	return nil
}
