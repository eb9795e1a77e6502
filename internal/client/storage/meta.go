package storage

import (
	"context"

	"github.com/ddanilov/sitesync/internal/models"
)

//go:generate moq -out metastorage_mock.go . MetaStorage

// MetaStorage defines the metadata collection of the mutation log:
// sync preferences, last successful sync time and the access token.
type MetaStorage interface {
	// SavePreferences persists the full preferences value
	SavePreferences(ctx context.Context, prefs models.SyncPreferences) error

	// GetPreferences retrieves the saved preferences
	// Returns ErrPreferencesNotFound if none have been saved yet
	GetPreferences(ctx context.Context) (models.SyncPreferences, error)

	// SaveLastSyncTime saves the epoch millis of the last successful drain
	SaveLastSyncTime(ctx context.Context, ts int64) error

	// GetLastSyncTime retrieves the epoch millis of the last successful
	// drain, or 0 if no drain has completed yet
	GetLastSyncTime(ctx context.Context) (int64, error)

	// SaveAccessToken persists the bearer token used by the transport
	SaveAccessToken(ctx context.Context, token string) error

	// GetAccessToken retrieves the saved bearer token
	// Returns ErrTokenNotFound if none has been saved
	GetAccessToken(ctx context.Context) (string, error)
}
