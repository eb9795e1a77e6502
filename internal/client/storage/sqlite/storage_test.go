package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func createTestMutation(id string, status models.MutationStatus) *models.PendingMutation {
	now := time.Now().UnixMilli()
	return &models.PendingMutation{
		ID:         id,
		EntityType: "daily_log",
		EntityID:   "d-" + id,
		Operation:  models.OperationCreate,
		Payload:    map[string]any{"notes": "poured slab " + id},
		Status:     status,
		CreatedAt:  now,
		Timestamp:  now,
	}
}

func TestStorage_Queue_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	m := createTestMutation("m-1", models.StatusPending)
	require.NoError(t, store.SaveMutation(ctx, m))

	got, err := store.GetMutation(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, m.EntityType, got.EntityType)
	assert.Equal(t, m.Status, got.Status)
	assert.Equal(t, "poured slab m-1", got.Payload["notes"])
}

func TestStorage_Queue_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetMutation(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrMutationNotFound)
}

func TestStorage_Queue_FIFOOrder(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, store.SaveMutation(ctx, createTestMutation(fmt.Sprintf("m-%02d", i), models.StatusPending)))
	}

	// Обновление не должно двигать запись в конец очереди
	updated := createTestMutation("m-00", models.StatusFailed)
	updated.RetryCount = 1
	require.NoError(t, store.SaveMutation(ctx, updated))

	mutations, err := store.ListMutations(ctx)
	require.NoError(t, err)
	require.Len(t, mutations, 10)

	for i, m := range mutations {
		assert.Equal(t, fmt.Sprintf("m-%02d", i), m.ID)
	}
	assert.Equal(t, models.StatusFailed, mutations[0].Status)
}

func TestStorage_Queue_CountByStatus(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMutation(ctx, createTestMutation("m-1", models.StatusPending)))
	require.NoError(t, store.SaveMutation(ctx, createTestMutation("m-2", models.StatusPending)))
	require.NoError(t, store.SaveMutation(ctx, createTestMutation("m-3", models.StatusFailed)))

	count, err := store.CountMutationsByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStorage_Queue_DeleteAndClear(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveMutation(ctx, createTestMutation("m-1", models.StatusPending)))
	require.NoError(t, store.SaveMutation(ctx, createTestMutation("m-2", models.StatusPending)))

	require.NoError(t, store.DeleteMutation(ctx, "m-1"))
	require.NoError(t, store.DeleteMutation(ctx, "m-1")) // повторное удаление - no-op

	mutations, err := store.ListMutations(ctx)
	require.NoError(t, err)
	assert.Len(t, mutations, 1)

	require.NoError(t, store.ClearMutations(ctx))

	mutations, err = store.ListMutations(ctx)
	require.NoError(t, err)
	assert.Empty(t, mutations)
}

func TestStorage_Conflicts_SoftResolve(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	now := time.Now().UnixMilli()
	c := &models.SyncConflict{
		ID:              "c-1",
		EntityType:      "punch_item",
		EntityID:        "p1",
		LocalData:       map[string]any{"title": "A"},
		ServerData:      map[string]any{"title": "B"},
		LocalTimestamp:  now - 500,
		ServerTimestamp: now,
		CreatedAt:       now,
		DetectedAt:      now,
	}
	require.NoError(t, store.SaveConflict(ctx, c))

	count, err := store.CountUnresolvedConflicts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	c.Resolved = true
	require.NoError(t, store.SaveConflict(ctx, c))

	// Запись остается, но больше не считается неразрешенной
	got, err := store.GetConflict(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, got.Resolved)
	assert.Equal(t, "A", got.LocalData["title"])

	count, err = store.CountUnresolvedConflicts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	unresolved, err := store.ListUnresolvedConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, unresolved)
}

func TestStorage_Conflicts_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetConflict(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestStorage_Meta(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetPreferences(ctx)
	assert.ErrorIs(t, err, storage.ErrPreferencesNotFound)

	prefs := models.DefaultPreferences()
	prefs.AutoSync = false
	require.NoError(t, store.SavePreferences(ctx, prefs))

	got, err := store.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)

	ts, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ts)

	require.NoError(t, store.SaveLastSyncTime(ctx, 42))
	ts, err = store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ts)

	_, err = store.GetAccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, store.SaveAccessToken(ctx, "token-abc"))
	token, err := store.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}
