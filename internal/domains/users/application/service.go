package application

import (
	"context"
	"errors"
	"strings"

	"github.com/shopilens/storefront-api/internal/domains/users/domain"
	"github.com/shopilens/storefront-api/internal/domains/users/ports"
)

// Service exposes user bounded context use cases.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore
}

func NewService(repo ports.Repository, sessions ports.SessionStore) *Service {
	return &Service{repo: repo, sessions: sessions}
}

func (s *Service) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if err := user.Validate(); err != nil {
		return nil, mapError(err)
	}
	if existing, err := s.repo.GetByUsername(ctx, user.Username); err == nil && existing != nil {
		return nil, ports.ErrUsernameTaken
	}
	return s.repo.Save(ctx, user)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", ports.ErrInvalidCredentials
	}
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ports.ErrInvalidCredentials
		}
		return "", err
	}
	if !user.CheckPassword(password) {
		return "", ports.ErrInvalidCredentials
	}
	return s.sessions.Create(ctx, username)
}

func (s *Service) Logout(ctx context.Context, token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	_ = s.sessions.Delete(ctx, token)
}

func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ports.ErrSessionNotFound
	}
	return s.sessions.Resolve(ctx, token)
}

var _ ports.Service = (*Service)(nil)
