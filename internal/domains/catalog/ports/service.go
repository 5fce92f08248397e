package ports

import (
	"context"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}
