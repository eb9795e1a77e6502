package storage

import (
	"context"

	"github.com/ddanilov/sitesync/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines the durable sync-queue collection of the mutation log.
// Implementations must preserve insertion order: ListMutations returns
// records in the order they were first saved (FIFO), never re-sorted.
type QueueStorage interface {
	// SaveMutation stores or updates a queued mutation
	SaveMutation(ctx context.Context, m *models.PendingMutation) error

	// GetMutation retrieves a queued mutation by ID
	// Returns ErrMutationNotFound if the mutation doesn't exist
	GetMutation(ctx context.Context, id string) (*models.PendingMutation, error)

	// ListMutations returns all queued mutations in insertion order
	ListMutations(ctx context.Context) ([]*models.PendingMutation, error)

	// DeleteMutation removes a queued mutation by ID
	// Deleting a missing mutation is not an error
	DeleteMutation(ctx context.Context, id string) error

	// ClearMutations removes every queued mutation
	ClearMutations(ctx context.Context) error

	// CountMutationsByStatus returns the number of mutations with the
	// given status. Backends without a usable secondary index return
	// ErrIndexUnsupported; callers fall back to ListMutations.
	CountMutationsByStatus(ctx context.Context, status models.MutationStatus) (int, error)
}
