package repositories

import (
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repositories. Services and handlers match
// them with errors.Is instead of inspecting driver-specific errors.
var (
	// ErrNotFound signals that no record matched the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey signals a unique-constraint violation.
	ErrDuplicateKey = errors.New("duplicate value for unique field")
)

// newObjectID generates a 24-character hexadecimal identifier, the id
// shape the catalog has always exposed to clients.
func newObjectID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:12])
}
