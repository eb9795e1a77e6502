package storage

import (
	"context"

	"github.com/ddanilov/sitesync/internal/models"
)

//go:generate moq -out conflictstorage_mock.go . ConflictStorage

// ConflictStorage defines the durable conflicts collection of the mutation
// log. Conflicts are never physically deleted on resolution: the Resolved
// flag is the only durable record that a conflict ever occurred.
type ConflictStorage interface {
	// SaveConflict stores or updates a conflict record
	SaveConflict(ctx context.Context, c *models.SyncConflict) error

	// GetConflict retrieves a conflict by ID
	// Returns ErrConflictNotFound if the conflict doesn't exist
	GetConflict(ctx context.Context, id string) (*models.SyncConflict, error)

	// ListConflicts returns all conflicts, resolved ones included
	ListConflicts(ctx context.Context) ([]*models.SyncConflict, error)

	// ListUnresolvedConflicts returns conflicts with Resolved=false
	ListUnresolvedConflicts(ctx context.Context) ([]*models.SyncConflict, error)

	// CountUnresolvedConflicts returns the number of unresolved conflicts.
	// Backends without a usable secondary index return ErrIndexUnsupported;
	// callers fall back to ListConflicts.
	CountUnresolvedConflicts(ctx context.Context) (int, error)

	// ClearConflicts removes every conflict record
	// Used for testing and full re-sync
	ClearConflicts(ctx context.Context) error
}
