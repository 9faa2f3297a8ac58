package helpers

import (
	"errors"
	"net/http"

	"shelfshare/internal/lenderrors"
)

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, lenderrors.ErrEmailExists):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, lenderrors.ErrPhoneExists):
		return http.StatusBadRequest, "Phone number already registered"
	case errors.Is(err, lenderrors.ErrInvalidInput):
		return http.StatusBadRequest, "Email or phone is required"
	case errors.Is(err, lenderrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, lenderrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, lenderrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
