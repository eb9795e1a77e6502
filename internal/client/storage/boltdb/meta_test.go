package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

func TestStorage_Preferences_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetPreferences(ctx)
	assert.ErrorIs(t, err, storage.ErrPreferencesNotFound)

	prefs := models.DefaultPreferences()
	prefs.SyncPhotosOnCellular = true
	require.NoError(t, store.SavePreferences(ctx, prefs))

	got, err := store.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}

func TestStorage_LastSyncTime(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// До первой синхронизации - 0
	ts, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	require.NoError(t, store.SaveLastSyncTime(ctx, 1756700000000))

	ts, err = store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1756700000000), ts)
}

func TestStorage_AccessToken(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetAccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, store.SaveAccessToken(ctx, "token-abc"))

	token, err := store.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}
