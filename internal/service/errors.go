package service

import (
	"errors"
	"fmt"

	"plantdiary/internal/models"
	"plantdiary/internal/storage"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = storage.ErrNotFound
	// ErrSyncUnavailable is returned because no sync backend exists.
	ErrSyncUnavailable = errors.New("sync is not available")
	// ErrSyncInProgress is returned when the stored sync state says a sync is running.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// ValidationError represents a validation error with a field name.
type ValidationError = models.ValidationError

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
