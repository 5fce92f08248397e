package ports

import (
	"context"

	"github.com/shopilens/storefront-api/internal/domains/users/domain"
)

// Service exposes user bounded context use cases to adapters.
type Service interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string)
	// Authenticate resolves a session token to the owning username.
	Authenticate(ctx context.Context, token string) (string, error)
}
