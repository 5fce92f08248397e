package storefrontserver

import (
	"errors"
	"net/http"

	cartmapper "github.com/shopilens/storefront-api/internal/domains/cart/adapters/http/mapper"
	cartapp "github.com/shopilens/storefront-api/internal/domains/cart/application"
	catalogapp "github.com/shopilens/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/shopilens/storefront-api/internal/domains/catalog/ports"
	usersapp "github.com/shopilens/storefront-api/internal/domains/users/application"
	usersports "github.com/shopilens/storefront-api/internal/domains/users/ports"
	apierrors "github.com/shopilens/storefront-api/internal/shared/errors"
)

// cartErrorMapper translates cart application and payload errors into API
// responses. Invalid input keeps its message so the shopper sees what was
// wrong with the request.
func cartErrorMapper(err error) (apierrors.APIError, bool) {
	switch {
	case errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, cartmapper.ErrMissingProduct),
		errors.Is(err, cartmapper.ErrMissingProductID),
		errors.Is(err, cartmapper.ErrMissingQuantity):
		return apierrors.APIError{Status: http.StatusBadRequest, Message: err.Error()}, true
	}
	return apierrors.APIError{}, false
}

func catalogErrorMapper(err error) (apierrors.APIError, bool) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return apierrors.APIError{Status: http.StatusBadRequest, Message: err.Error()}, true
	case errors.Is(err, catalogports.ErrNotFound):
		return apierrors.ErrNotFound, true
	case errors.Is(err, catalogapp.ErrSourceUnavailable):
		return apierrors.ErrUpstream, true
	}
	return apierrors.APIError{}, false
}

func userErrorMapper(err error) (apierrors.APIError, bool) {
	switch {
	case errors.Is(err, usersapp.ErrInvalidInput):
		return apierrors.APIError{Status: http.StatusBadRequest, Message: err.Error()}, true
	case errors.Is(err, usersports.ErrUsernameTaken):
		return apierrors.APIError{Status: http.StatusConflict, Message: usersports.ErrUsernameTaken.Error()}, true
	case errors.Is(err, usersports.ErrInvalidCredentials),
		errors.Is(err, usersports.ErrSessionNotFound):
		return apierrors.ErrUnauthorized, true
	case errors.Is(err, usersports.ErrNotFound):
		return apierrors.ErrNotFound, true
	}
	return apierrors.APIError{}, false
}
