package appstate

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/client/storage/boltdb"
	"github.com/ddanilov/sitesync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestStore строит Store поверх реального boltdb-хранилища
func createTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	bolt, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, bolt.Close())
	})

	return New(bolt, bolt, bolt, testLogger())
}

func createTestMutation(id string, status models.MutationStatus) *models.PendingMutation {
	now := time.Now().UnixMilli()
	return &models.PendingMutation{
		ID:         id,
		EntityType: "daily_log",
		EntityID:   "d-" + id,
		Operation:  models.OperationUpdate,
		Payload:    map[string]any{"notes": "rebar inspection"},
		Status:     status,
		CreatedAt:  now,
		Timestamp:  now,
	}
}

func createTestConflict(id, entityID string) *models.SyncConflict {
	now := time.Now().UnixMilli()
	return &models.SyncConflict{
		ID:              id,
		EntityType:      "punch_item",
		EntityID:        entityID,
		LocalData:       map[string]any{"status": "closed"},
		ServerData:      map[string]any{"status": "open"},
		LocalTimestamp:  now - 1000,
		ServerTimestamp: now,
		CreatedAt:       now,
		DetectedAt:      now,
	}
}

func TestStore_SetOnline_RefreshesPendingCount(t *testing.T) {
	ctx := context.Background()

	// За счетчиком должен идти индексированный запрос, не полная
	// перезагрузка очереди
	queueMock := &storage.QueueStorageMock{
		SaveMutationFunc: func(ctx context.Context, m *models.PendingMutation) error {
			return nil
		},
		CountMutationsByStatusFunc: func(ctx context.Context, status models.MutationStatus) (int, error) {
			return 5, nil
		},
	}
	store := New(queueMock, &storage.ConflictStorageMock{}, &storage.MetaStorageMock{}, testLogger())

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Enqueue(ctx, &models.PendingMutation{
			EntityType: "photo",
			EntityID:   "p1",
			Operation:  models.OperationCreate,
			Payload:    map[string]any{},
		}))
	}

	store.SetOnline(ctx, true)

	assert.True(t, store.IsOnline())
	assert.Equal(t, 5, store.PendingSyncs())
	assert.Len(t, queueMock.CountMutationsByStatusCalls(), 1)
	assert.Empty(t, queueMock.ListMutationsCalls())
}

func TestStore_SetOnline_AlreadyOnlineSkipsRefresh(t *testing.T) {
	ctx := context.Background()

	queueMock := &storage.QueueStorageMock{
		CountMutationsByStatusFunc: func(ctx context.Context, status models.MutationStatus) (int, error) {
			return 0, nil
		},
	}
	store := New(queueMock, &storage.ConflictStorageMock{}, &storage.MetaStorageMock{}, testLogger())

	store.SetOnline(ctx, true)
	store.SetOnline(ctx, true)

	assert.Len(t, queueMock.CountMutationsByStatusCalls(), 1)
}

func TestStore_Subscribe(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	var snapshots []State
	unsubscribe := store.Subscribe(func(s State) {
		snapshots = append(snapshots, s)
	})

	store.SetSyncing(true)
	require.Len(t, snapshots, 1)
	assert.True(t, snapshots[0].IsSyncing)

	unsubscribe()
	store.SetOnline(ctx, true)
	assert.Len(t, snapshots, 1)
}

func TestStore_Snapshot_Isolated(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Enqueue(ctx, createTestMutation("m-1", models.StatusPending)))

	snap := store.Snapshot()
	require.Len(t, snap.SyncQueue, 1)

	require.NoError(t, store.Enqueue(ctx, createTestMutation("m-2", models.StatusPending)))

	// Снимок не должен видеть последующие изменения
	assert.Len(t, snap.SyncQueue, 1)
	assert.Len(t, store.Snapshot().SyncQueue, 2)
}

func TestStore_SetSyncing_ClearsProgress(t *testing.T) {
	store := createTestStore(t)

	store.SetSyncing(true)
	store.SetProgress(&models.SyncProgress{Current: 1, Total: 2, Percentage: 50})
	require.NotNil(t, store.Snapshot().SyncProgress)

	store.SetSyncing(false)
	assert.Nil(t, store.Snapshot().SyncProgress)
}

func TestStore_UpdatePreferences(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	autoSync := false
	batch := int64(1024)
	merged := store.UpdatePreferences(ctx, models.PreferencesPatch{
		AutoSync:     &autoSync,
		MaxBatchSize: &batch,
	})

	assert.False(t, merged.AutoSync)
	assert.Equal(t, int64(1024), merged.MaxBatchSize)
	// Незатронутые поля сохраняют прежние значения
	assert.True(t, merged.SyncOnCellular)
	assert.False(t, merged.SyncPhotosOnCellular)

	// Настройки должны пережить повторную инициализацию
	fresh := New(store.queue, store.conflicts, store.meta, testLogger())
	fresh.Init(ctx)
	assert.Equal(t, merged, fresh.Preferences())
}

func TestStore_Init_DegradesOnStorageFailure(t *testing.T) {
	failing := assert.AnError

	queueMock := &storage.QueueStorageMock{
		ListMutationsFunc: func(ctx context.Context) ([]*models.PendingMutation, error) {
			return nil, failing
		},
		CountMutationsByStatusFunc: func(ctx context.Context, status models.MutationStatus) (int, error) {
			return 0, failing
		},
	}
	conflictMock := &storage.ConflictStorageMock{
		ListUnresolvedConflictsFunc: func(ctx context.Context) ([]*models.SyncConflict, error) {
			return nil, failing
		},
	}
	metaMock := &storage.MetaStorageMock{
		GetPreferencesFunc: func(ctx context.Context) (models.SyncPreferences, error) {
			return models.SyncPreferences{}, failing
		},
		GetLastSyncTimeFunc: func(ctx context.Context) (int64, error) {
			return 0, failing
		},
	}

	store := New(queueMock, conflictMock, metaMock, testLogger())
	store.Init(context.Background())

	snap := store.Snapshot()
	assert.Empty(t, snap.SyncQueue)
	assert.Equal(t, 0, snap.PendingSyncs)
	assert.Empty(t, snap.Conflicts)
	assert.Equal(t, 0, snap.ConflictCount)
	assert.Equal(t, models.DefaultPreferences(), snap.Preferences)
	assert.Equal(t, int64(0), snap.LastSyncTime)
}
