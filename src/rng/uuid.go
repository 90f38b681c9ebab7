package rng

import (
	"github.com/google/uuid"
)

// NewUUID generates an RFC 4122 version 4 UUID from the same entropy stream.
// Handlers call it only after an outcome is computed, so it never biases outcomes.
func NewUUID(src Source) (string, error) {
	id, err := uuid.NewRandomFromReader(NewReader(src))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
