package cart

import (
	"context"
	"errors"

	"github.com/shopilens/storefront-api/internal/domains/cart/adapters/http/mapper"
)

// networkFailureMessage is what the store shows when the API is unreachable.
const networkFailureMessage = "could not reach the cart service"

// Session drives the observable store against the cart API. Every successful
// call replaces the cached items wholesale with the server's response, so
// overlapping requests resolve to whichever response lands last.
type Session struct {
	client *Client
	cache  *Cache
}

func NewSession(client *Client, cache *Cache) *Session {
	if cache == nil {
		cache = NewCache()
	}
	return &Session{client: client, cache: cache}
}

// Cache exposes the session's store for subscriptions and reads.
func (s *Session) Cache() *Cache {
	return s.cache
}

// Sync loads the server's cart into the store. Called once when the session
// starts, before any mutation.
func (s *Session) Sync(ctx context.Context) error {
	return s.apply(func() ([]mapper.LineItem, error) {
		return s.client.Get(ctx)
	})
}

// Add puts a product into the cart.
func (s *Session) Add(ctx context.Context, product mapper.Product, quantity int64) error {
	return s.apply(func() ([]mapper.LineItem, error) {
		return s.client.Add(ctx, product, quantity)
	})
}

// SetQuantity sets a line item's exact quantity. Zero or less removes it.
func (s *Session) SetQuantity(ctx context.Context, productID, quantity int64) error {
	return s.apply(func() ([]mapper.LineItem, error) {
		return s.client.SetQuantity(ctx, productID, quantity)
	})
}

// Remove drops a line item.
func (s *Session) Remove(ctx context.Context, productID int64) error {
	return s.apply(func() ([]mapper.LineItem, error) {
		return s.client.Remove(ctx, productID)
	})
}

// Clear empties the cart.
func (s *Session) Clear(ctx context.Context) error {
	return s.apply(func() ([]mapper.LineItem, error) {
		return s.client.Clear(ctx)
	})
}

func (s *Session) apply(call func() ([]mapper.LineItem, error)) error {
	s.cache.Begin()
	items, err := call()
	if err != nil {
		s.cache.Fail(failureMessage(err))
		return err
	}
	s.cache.Replace(items)
	return nil
}

// failureMessage surfaces the server's rejection text when there is one and
// a generic message for transport failures.
func failureMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return networkFailureMessage
}
