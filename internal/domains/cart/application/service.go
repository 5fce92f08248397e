package application

import (
	"context"

	"github.com/shopilens/storefront-api/internal/domains/cart/domain"
	"github.com/shopilens/storefront-api/internal/domains/cart/ports"
	"github.com/shopilens/storefront-api/internal/domains/cart/token"
)

// Service implements the cart mutation use cases over the client-held token.
// There is no server-side cart state: each operation works on its own decoded
// snapshot and unconditionally re-encodes it, so concurrent callers sharing a
// token are last-write-wins.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Read(_ context.Context, raw string) (domain.Cart, string, error) {
	return persist(token.Decode(raw))
}

func (s *Service) Add(_ context.Context, raw string, product domain.Product, quantity int64) (domain.Cart, string, error) {
	cart := token.Decode(raw)
	if err := cart.Add(product, quantity); err != nil {
		return nil, "", mapError(err)
	}
	return persist(cart)
}

func (s *Service) SetQuantity(_ context.Context, raw string, productID, quantity int64) (domain.Cart, string, error) {
	cart := token.Decode(raw)
	cart.SetQuantity(productID, quantity)
	return persist(cart)
}

func (s *Service) Remove(_ context.Context, raw string, productID int64) (domain.Cart, string, error) {
	cart := token.Decode(raw)
	cart.Remove(productID)
	return persist(cart)
}

func (s *Service) Clear(_ context.Context, raw string) (domain.Cart, string, error) {
	cart := token.Decode(raw)
	cart.Clear()
	return persist(cart)
}

func persist(cart domain.Cart) (domain.Cart, string, error) {
	raw, err := token.Encode(cart)
	if err != nil {
		return nil, "", err
	}
	return cart, raw, nil
}

var _ ports.Service = (*Service)(nil)
