package ports

import (
	"context"
	"errors"

	"github.com/shopilens/storefront-api/internal/domains/users/domain"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Repository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}
