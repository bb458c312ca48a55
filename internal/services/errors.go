package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service-level error taxonomy. Handlers map these onto HTTP statuses.
var (
	// ErrProductNotFound marks a lookup, update or delete whose target does
	// not exist. Wrapped errors carry the term or id that failed.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateKey marks a unique-constraint violation on title or slug.
	// Wrapped errors carry the constraint detail, since that is actionable
	// client input.
	ErrDuplicateKey = errors.New("duplicate key violates a unique constraint")
	// ErrUnexpected is the opaque error surfaced for any other storage
	// fault. The full detail is logged server-side only.
	ErrUnexpected = errors.New("unexpected error, check server logs")
)

// notFoundError wraps ErrProductNotFound with the term that failed.
func notFoundError(term string) error {
	return fmt.Errorf("product with term %s not found: %w", term, ErrProductNotFound)
}

// translateDBError maps a storage failure onto the service taxonomy: a
// uniqueness violation keeps its detail for the caller, everything else is
// logged in full and replaced with an opaque error.
func translateDBError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%v: %w", err, ErrDuplicateKey)
	}
	log.Error().Err(err).Msg("unexpected database error")
	return ErrUnexpected
}
