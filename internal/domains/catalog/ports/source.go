package ports

import (
	"context"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
)

// Source fetches the full product catalog from the remote provider.
type Source interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
