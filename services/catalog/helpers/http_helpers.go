package helpers

import (
	"errors"
	"net/http"

	"shelfshare/internal/lenderrors"
)

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, lenderrors.ErrBookNotFound):
		return http.StatusNotFound, "book not found"
	case errors.Is(err, lenderrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, lenderrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid book details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
