// Package store holds the authoritative in-memory collections for the
// ledger's entities and keeps each one synchronized with its persisted blob.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fittrack/fittrack-cli/internal/storage"
)

// ErrValidation marks writes rejected before any mutation or persistence.
var ErrValidation = errors.New("validation failed")

const dayFormat = "2006-01-02"

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// persistError tags an adapter write failure with storage.ErrPersistence so
// callers can tell mutations lost to the persistence boundary apart from
// validation errors, whatever the adapter behind the store.
func persistError(what string, err error) error {
	if !errors.Is(err, storage.ErrPersistence) {
		err = fmt.Errorf("%w: %w", storage.ErrPersistence, err)
	}
	return fmt.Errorf("persist %s: %w", what, err)
}

func validateDay(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError("%s is required", field)
	}
	if _, err := time.Parse(dayFormat, value); err != nil {
		return validationError("invalid %s %q (expected YYYY-MM-DD)", field, value)
	}
	return nil
}

func validateNonNegative(field string, value float64) error {
	if value < 0 {
		return validationError("%s must be >= 0", field)
	}
	return nil
}

func validateOptionalNonNegative(field string, value *float64) error {
	if value != nil && *value < 0 {
		return validationError("%s must be >= 0", field)
	}
	return nil
}
