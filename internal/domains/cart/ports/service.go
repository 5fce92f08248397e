package ports

import (
	"context"

	"github.com/shopilens/storefront-api/internal/domains/cart/domain"
)

// Service exposes the cart mutation operations. Each operation decodes the
// supplied raw token, applies exactly one mutation, and returns the updated
// cart together with the re-encoded token the transport must persist. The
// token is rewritten on every call, changed or not.
type Service interface {
	Read(ctx context.Context, raw string) (domain.Cart, string, error)
	Add(ctx context.Context, raw string, product domain.Product, quantity int64) (domain.Cart, string, error)
	SetQuantity(ctx context.Context, raw string, productID, quantity int64) (domain.Cart, string, error)
	Remove(ctx context.Context, raw string, productID int64) (domain.Cart, string, error)
	Clear(ctx context.Context, raw string) (domain.Cart, string, error)
}
