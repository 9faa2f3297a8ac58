package helpers

import (
	"errors"
	"net/http"

	"shelfshare/internal/lenderrors"
)

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// An unknown book and an unavailable one are indistinguishable to the caller
// of a borrow request: both are "Book not available".
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, lenderrors.ErrBookUnavailable):
		return http.StatusBadRequest, "Book not available"
	case errors.Is(err, lenderrors.ErrBookNotFound):
		return http.StatusBadRequest, "Book not available"
	case errors.Is(err, lenderrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid borrow request"
	case errors.Is(err, lenderrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, lenderrors.ErrTransactionNotFound):
		return http.StatusNotFound, "transaction not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
