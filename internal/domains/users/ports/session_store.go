package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound signals a missing or expired session token.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore issues and resolves session tokens. Tokens carry no meaning to
// callers; the checkout gate only needs token -> username resolution.
type SessionStore interface {
	Create(ctx context.Context, username string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
