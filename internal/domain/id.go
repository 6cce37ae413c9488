package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidateID checks that id is a well-formed storage identifier (UUID).
// Returns ErrInvalidUserID before any storage access is attempted.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidUserID)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}
	return nil
}

// NewID mints a fresh storage identifier.
func NewID() string {
	return uuid.NewString()
}
