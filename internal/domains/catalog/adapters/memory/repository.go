package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
	"github.com/shopilens/storefront-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog cache.
type Repository struct {
	mu        sync.RWMutex
	products  []domain.Product
	fetchedAt time.Time
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) ReplaceAll(_ context.Context, products []domain.Product, fetchedAt time.Time) error {
	clone := make([]domain.Product, len(products))
	copy(clone, products)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = clone
	r.fetchedAt = fetchedAt
	return nil
}

func (r *Repository) List(_ context.Context) ([]domain.Product, time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := make([]domain.Product, len(r.products))
	copy(clone, r.products)
	return clone, r.fetchedAt, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ports.ErrNotFound
}

func (r *Repository) Search(_ context.Context, query string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Matches(query) {
			results = append(results, p)
		}
	}
	return results, nil
}
