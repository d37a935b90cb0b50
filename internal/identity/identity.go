// Package identity canonicalizes record identifiers.
package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// Normalize returns the canonical lowercase form of raw. The label names
// the call site in the error. Normalizing an already-canonical identifier
// returns it unchanged.
func Normalize(raw, label string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("identity: normalize %s %q: %w", label, raw, err)
	}
	return id.String(), nil
}
