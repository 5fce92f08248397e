package application

import (
	"errors"
	"fmt"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a catalog invariant.
	ErrInvalidInput = errors.New("invalid catalog input")
	// ErrSourceUnavailable signals the remote source failed with no warm cache
	// to fall back to.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidID) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
}
