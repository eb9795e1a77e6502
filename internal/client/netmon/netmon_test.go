package netmon

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/sitesync/internal/client/appstate"
	"github.com/ddanilov/sitesync/internal/client/orchestrator"
	"github.com/ddanilov/sitesync/internal/client/storage/boltdb"
	"github.com/ddanilov/sitesync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEvents имитирует источник событий связности
type fakeEvents struct {
	handler      func(online bool)
	unsubscribed atomic.Int32
}

func (f *fakeEvents) Subscribe(ctx context.Context, handler func(online bool)) (func(), error) {
	f.handler = handler
	return func() { f.unsubscribed.Add(1) }, nil
}

type fakeQuota struct {
	calls atomic.Int32
	err   error
}

func (f *fakeQuota) SampleQuota(ctx context.Context) (*models.StorageQuota, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &models.StorageQuota{Total: 100, Used: 40, Available: 60}, nil
}

type fakeDrainer struct {
	calls atomic.Int32
}

func (f *fakeDrainer) Drain(ctx context.Context) (orchestrator.DrainResult, error) {
	f.calls.Add(1)
	return orchestrator.DrainResult{}, nil
}

func createTestState(t *testing.T) *appstate.Store {
	t.Helper()

	// Монитор не трогает журнал напрямую, но Store требует бэкенд
	dbPath := filepath.Join(t.TempDir(), "test.db")
	bolt, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, bolt.Close())
	})
	return appstate.New(bolt, bolt, bolt, testLogger())
}

func TestMonitor_TransitionUpdatesState(t *testing.T) {
	state := createTestState(t)
	events := &fakeEvents{}
	monitor := New(state, events, &fakeQuota{}, time.Hour, testLogger())

	stop, err := monitor.Start(context.Background())
	require.NoError(t, err)
	defer stop()

	require.NotNil(t, events.handler)
	events.handler(true)
	assert.True(t, state.IsOnline())

	events.handler(false)
	assert.False(t, state.IsOnline())
}

func TestMonitor_ReconnectTriggersAutoSync(t *testing.T) {
	state := createTestState(t)
	events := &fakeEvents{}
	drainer := &fakeDrainer{}

	monitor := New(state, events, &fakeQuota{}, time.Hour, testLogger())
	monitor.SetDrainer(drainer)

	stop, err := monitor.Start(context.Background())
	require.NoError(t, err)
	defer stop()

	events.handler(true)
	assert.Equal(t, int32(1), drainer.calls.Load())

	// Уход в офлайн не запускает синхронизацию
	events.handler(false)
	assert.Equal(t, int32(1), drainer.calls.Load())
}

func TestMonitor_AutoSyncDisabledSkipsDrain(t *testing.T) {
	state := createTestState(t)
	events := &fakeEvents{}
	drainer := &fakeDrainer{}

	autoSync := false
	state.UpdatePreferences(context.Background(), models.PreferencesPatch{AutoSync: &autoSync})

	monitor := New(state, events, &fakeQuota{}, time.Hour, testLogger())
	monitor.SetDrainer(drainer)

	stop, err := monitor.Start(context.Background())
	require.NoError(t, err)
	defer stop()

	events.handler(true)
	assert.Equal(t, int32(0), drainer.calls.Load())
}

func TestMonitor_PeriodicQuotaSampling(t *testing.T) {
	state := createTestState(t)
	quota := &fakeQuota{}

	monitor := New(state, &fakeEvents{}, quota, 10*time.Millisecond, testLogger())

	stop, err := monitor.Start(context.Background())
	require.NoError(t, err)
	defer stop()

	assert.Eventually(t, func() bool {
		return quota.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	snap := state.Snapshot()
	require.NotNil(t, snap.StorageQuota)
	assert.Equal(t, int64(60), snap.StorageQuota.Available)
}

func TestMonitor_SamplingFailureIgnored(t *testing.T) {
	state := createTestState(t)
	quota := &fakeQuota{err: assert.AnError}

	monitor := New(state, &fakeEvents{}, quota, 10*time.Millisecond, testLogger())

	stop, err := monitor.Start(context.Background())
	require.NoError(t, err)
	defer stop()

	assert.Eventually(t, func() bool {
		return quota.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	assert.Nil(t, state.Snapshot().StorageQuota)
}

func TestMonitor_StopIsIdempotent(t *testing.T) {
	state := createTestState(t)
	events := &fakeEvents{}
	quota := &fakeQuota{}

	monitor := New(state, events, quota, 10*time.Millisecond, testLogger())

	stop, err := monitor.Start(context.Background())
	require.NoError(t, err)

	stop()
	stop()

	assert.Equal(t, int32(1), events.unsubscribed.Load())

	// После остановки сэмплирование прекращается
	sampled := quota.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, sampled, quota.calls.Load())
}
