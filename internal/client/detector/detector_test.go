package detector

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestDetector возвращает взведенный детектор и функцию доставки
// событий, имитирующую ленту изменений
func createTestDetector(t *testing.T) (*Detector, func(Change), *SubscriptionMock) {
	t.Helper()

	var handler func(Change)
	source := &SubscriptionMock{
		SubscribeFunc: func(ctx context.Context, filter Filter, h func(Change)) (func(), error) {
			handler = h
			return func() {}, nil
		},
	}

	d := New(source, "field-user", testLogger())
	require.NoError(t, d.SetTarget(context.Background(), Filter{EntityType: "punch_item", EntityID: "p1"}))
	require.NoError(t, d.SetEnabled(context.Background(), true))

	deliver := func(c Change) {
		require.NotNil(t, handler)
		handler(c)
	}
	return d, deliver, source
}

func TestDetector_ForeignAuthorConflicts(t *testing.T) {
	d, deliver, _ := createTestDetector(t)
	d.SetLocalData(map[string]any{"title": "A"})

	deliver(Change{New: map[string]any{"title": "B"}, Author: "office-user"})

	require.True(t, d.HasConflict())
	c := d.Conflict()
	assert.Equal(t, map[string]any{"title": "A"}, c.LocalData)
	assert.Equal(t, map[string]any{"title": "B"}, c.ServerData)
	assert.NotZero(t, c.DetectedAt)
}

func TestDetector_OwnAuthorNeverConflicts(t *testing.T) {
	d, deliver, _ := createTestDetector(t)
	d.SetLocalData(map[string]any{"title": "A"})

	deliver(Change{New: map[string]any{"title": "B"}, Author: "field-user"})

	assert.False(t, d.HasConflict())
}

func TestDetector_MissingAuthorConflicts(t *testing.T) {
	d, deliver, _ := createTestDetector(t)
	d.SetLocalData(map[string]any{"title": "A"})

	// Неизвестный автор трактуется как чужое изменение
	deliver(Change{New: map[string]any{"title": "B"}})

	assert.True(t, d.HasConflict())
}

func TestDetector_NoLocalDataNeverConflicts(t *testing.T) {
	d, deliver, _ := createTestDetector(t)

	deliver(Change{New: map[string]any{"title": "B"}, Author: "office-user"})
	deliver(Change{New: map[string]any{"title": "C"}})

	assert.False(t, d.HasConflict())
}

func TestDetector_OnConflictCallback(t *testing.T) {
	d, deliver, _ := createTestDetector(t)
	d.SetLocalData(map[string]any{"title": "A"})

	var calls atomic.Int32
	d.SetOnConflict(func(c Conflict) {
		calls.Add(1)
		assert.Equal(t, map[string]any{"title": "B"}, c.ServerData)
	})

	deliver(Change{New: map[string]any{"title": "B"}, Author: "office-user"})

	assert.Equal(t, int32(1), calls.Load())
}

func TestDetector_DisableClearsConflict(t *testing.T) {
	d, deliver, _ := createTestDetector(t)
	d.SetLocalData(map[string]any{"title": "A"})

	deliver(Change{New: map[string]any{"title": "B"}, Author: "office-user"})
	require.True(t, d.HasConflict())

	require.NoError(t, d.SetEnabled(context.Background(), false))

	assert.False(t, d.HasConflict())

	// Выключенный детектор игнорирует события
	deliver(Change{New: map[string]any{"title": "C"}, Author: "office-user"})
	assert.False(t, d.HasConflict())
}

func TestDetector_SetTargetResubscribes(t *testing.T) {
	d, _, source := createTestDetector(t)

	require.NoError(t, d.SetTarget(context.Background(), Filter{EntityType: "punch_item", EntityID: "p2"}))

	calls := source.SubscribeCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "p1", calls[0].Filter.EntityID)
	assert.Equal(t, "p2", calls[1].Filter.EntityID)
}

func TestDetector_TeardownOnDisable(t *testing.T) {
	var unsubscribed atomic.Int32
	source := &SubscriptionMock{
		SubscribeFunc: func(ctx context.Context, filter Filter, h func(Change)) (func(), error) {
			return func() { unsubscribed.Add(1) }, nil
		},
	}

	d := New(source, "field-user", testLogger())
	require.NoError(t, d.SetTarget(context.Background(), Filter{EntityType: "punch_item", EntityID: "p1"}))
	require.NoError(t, d.SetEnabled(context.Background(), true))

	require.NoError(t, d.SetEnabled(context.Background(), false))

	assert.Equal(t, int32(1), unsubscribed.Load())
}

func TestDetector_SubscribeError(t *testing.T) {
	source := &SubscriptionMock{
		SubscribeFunc: func(ctx context.Context, filter Filter, h func(Change)) (func(), error) {
			return nil, assert.AnError
		},
	}

	d := New(source, "field-user", testLogger())
	require.NoError(t, d.SetTarget(context.Background(), Filter{EntityType: "punch_item", EntityID: "p1"}))

	err := d.SetEnabled(context.Background(), true)

	assert.Error(t, err)
}

func TestDetector_AcceptServerChanges(t *testing.T) {
	d, deliver, _ := createTestDetector(t)

	assert.Nil(t, d.AcceptServerChanges())

	d.SetLocalData(map[string]any{"title": "A"})
	deliver(Change{New: map[string]any{"title": "B"}, Author: "office-user"})

	server := d.AcceptServerChanges()
	assert.Equal(t, map[string]any{"title": "B"}, server)
	assert.False(t, d.HasConflict())
}

func TestDetector_ResolveWithLocalChanges(t *testing.T) {
	d, deliver, _ := createTestDetector(t)
	d.SetLocalData(map[string]any{"title": "A"})

	deliver(Change{New: map[string]any{"title": "B"}, Author: "office-user"})

	local := d.ResolveWithLocalChanges()
	assert.Equal(t, map[string]any{"title": "A"}, local)
	assert.False(t, d.HasConflict())
}

func TestDetector_DismissConflict(t *testing.T) {
	d, deliver, _ := createTestDetector(t)
	d.SetLocalData(map[string]any{"title": "A"})

	deliver(Change{New: map[string]any{"title": "B"}, Author: "office-user"})
	require.True(t, d.HasConflict())

	d.DismissConflict()

	assert.False(t, d.HasConflict())
}
