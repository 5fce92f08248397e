package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/shopilens/storefront-api/internal/domains/users/domain"
	"github.com/shopilens/storefront-api/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{users: map[string]*domain.User{}}
}

func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	clone := *user
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.users[clone.Username] = &clone
	return &clone, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return ports.ErrNotFound
	}
	delete(r.users, username)
	return nil
}
