package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Predefined API errors for common outcomes.
var (
	ErrBadRequest = APIError{Status: http.StatusBadRequest, Message: "invalid request"}
	ErrNotFound   = APIError{Status: http.StatusNotFound, Message: "not found"}
	ErrUnauthorized = APIError{Status: http.StatusUnauthorized, Message: "authentication required"}
	ErrInternal   = APIError{Status: http.StatusInternalServerError, Message: "internal error"}
	ErrUpstream   = APIError{Status: http.StatusBadGateway, Message: "upstream service unavailable"}
)

// RespondData sends a 200 envelope with the given payload.
func RespondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, OK(data))
}

// RespondError converts an error into an envelope response. APIError values
// keep their status; anything else becomes a 500.
func RespondError(c *gin.Context, err error) {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, Failure(apiErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, Failure(ErrInternal.Message))
}

// ErrorMapper maps domain/application errors to APIError.
type ErrorMapper func(err error) (APIError, bool)

// RespondMapped tries each mapper before falling back to RespondError.
func RespondMapped(c *gin.Context, err error, mappers ...ErrorMapper) {
	for _, mapper := range mappers {
		if apiErr, ok := mapper(err); ok {
			c.JSON(apiErr.Status, Failure(apiErr.Message))
			return
		}
	}
	RespondError(c, err)
}
