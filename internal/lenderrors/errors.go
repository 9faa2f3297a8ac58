package lenderrors

import "errors"

// Store-level errors
var (
	ErrBookNotFound        = errors.New("book not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBookUnavailable     = errors.New("book not available")
)

// business logic errors
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
)
