package ports

import (
	"context"
	"errors"
	"time"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
)

var (
	ErrNotFound   = errors.New("product not found")
	ErrEmptyCache = errors.New("catalog cache is empty")
)

// Repository caches the product catalog between remote refreshes.
type Repository interface {
	// ReplaceAll swaps the cached catalog wholesale and stamps the refresh time.
	ReplaceAll(ctx context.Context, products []domain.Product, fetchedAt time.Time) error
	// List returns the cached products in catalog order plus the refresh time.
	List(ctx context.Context) ([]domain.Product, time.Time, error)
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	// Search returns products matching the free-text query.
	Search(ctx context.Context, query string) ([]domain.Product, error)
}
