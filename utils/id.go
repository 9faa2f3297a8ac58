package utils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// NewEntityID returns a prefixed, lexicographically sortable identifier for a
// stored record, e.g. "book-01hqv2...". The real backend uses the same scheme.
func NewEntityID(prefix string) string {
	return prefix + "-" + strings.ToLower(ulid.Make().String())
}
