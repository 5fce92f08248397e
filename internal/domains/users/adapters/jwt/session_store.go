// Package jwt provides a stateless SessionStore backed by signed tokens.
// Logout cannot revoke an issued token before expiry; prefer the Redis or
// Postgres stores when revocation matters.
package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	userports "github.com/shopilens/storefront-api/internal/domains/users/ports"
)

// DefaultSessionTTL provides the fallback TTL when none is configured.
const DefaultSessionTTL = 24 * time.Hour

var _ userports.SessionStore = (*SessionStore)(nil)

// SessionStore issues and validates HMAC-SHA256 signed session tokens.
type SessionStore struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionStore(secret string, ttl time.Duration) (*SessionStore, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *SessionStore) Create(_ context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.New("username is required")
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionStore) Resolve(_ context.Context, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", userports.ErrSessionNotFound
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", userports.ErrSessionNotFound
	}
	return claims.Subject, nil
}

// Delete is a no-op for stateless tokens; provided for interface parity.
func (s *SessionStore) Delete(_ context.Context, _ string) error {
	return nil
}
