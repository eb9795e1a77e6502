package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

// createTestConflict создает тестовый конфликт
func createTestConflict(id string, resolved bool) *models.SyncConflict {
	now := time.Now().UnixMilli()
	return &models.SyncConflict{
		ID:              id,
		EntityType:      "punch_item",
		EntityID:        "p-" + id,
		LocalData:       map[string]any{"title": "local"},
		ServerData:      map[string]any{"title": "server"},
		LocalTimestamp:  now - 1000,
		ServerTimestamp: now,
		Resolved:        resolved,
		CreatedAt:       now,
		DetectedAt:      now,
	}
}

func TestStorage_SaveConflict_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	c := createTestConflict("c-1", false)
	require.NoError(t, store.SaveConflict(ctx, c))

	got, err := store.GetConflict(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "local", got.LocalData["title"])
	assert.Equal(t, "server", got.ServerData["title"])
	assert.False(t, got.Resolved)
}

func TestStorage_GetConflict_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetConflict(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestStorage_SoftResolve_KeepsRecord(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	c := createTestConflict("c-1", false)
	require.NoError(t, store.SaveConflict(ctx, c))

	// Soft resolve: флаг меняется, запись остается
	c.Resolved = true
	require.NoError(t, store.SaveConflict(ctx, c))

	got, err := store.GetConflict(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, got.Resolved)

	all, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	unresolved, err := store.ListUnresolvedConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, unresolved)
}

func TestStorage_CountUnresolvedConflicts(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveConflict(ctx, createTestConflict("c-1", false)))
	require.NoError(t, store.SaveConflict(ctx, createTestConflict("c-2", true)))
	require.NoError(t, store.SaveConflict(ctx, createTestConflict("c-3", false)))

	count, err := store.CountUnresolvedConflicts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStorage_ClearConflicts(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveConflict(ctx, createTestConflict("c-1", false)))
	require.NoError(t, store.ClearConflicts(ctx))

	all, err := store.ListConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
