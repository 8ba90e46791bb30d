package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by services. Handlers map these to transport codes;
// nothing below the API layer knows about HTTP.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrExternalService = errors.New("external service failure")
)

func NotFound(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrNotFound)
}

func Conflict(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConflict)
}

func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

func ExternalService(msg string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s: %v: %w", msg, cause, ErrExternalService)
	}
	return fmt.Errorf("%s: %w", msg, ErrExternalService)
}
