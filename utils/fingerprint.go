package utils

import "fmt"

// Fingerprint returns the opaque display-only content fingerprint stamped on a
// book at creation. It is a 32-bit shift hash, not a cryptographic or
// perceptual hash.
func Fingerprint(data string) string {
	var hash int32
	for _, ch := range data {
		hash = (hash << 5) - hash + int32(ch)
	}
	return fmt.Sprintf("hash-%x", uint32(hash))
}
