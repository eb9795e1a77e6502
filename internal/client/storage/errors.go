package storage

import "errors"

// Common client storage errors
var (
	// ErrMutationNotFound indicates that a queued mutation was not found
	ErrMutationNotFound = errors.New("pending mutation not found")

	// ErrConflictNotFound indicates that a sync conflict was not found
	ErrConflictNotFound = errors.New("sync conflict not found")

	// ErrPreferencesNotFound indicates that no preferences have been saved yet
	ErrPreferencesNotFound = errors.New("sync preferences not found")

	// ErrTokenNotFound indicates that no access token has been saved
	ErrTokenNotFound = errors.New("access token not found")

	// ErrIndexUnsupported indicates that the backend cannot answer an
	// indexed count; callers fall back to a full scan
	ErrIndexUnsupported = errors.New("index query unsupported")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
