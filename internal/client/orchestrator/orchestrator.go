package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ddanilov/sitesync/internal/client/appstate"
	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
	"github.com/ddanilov/sitesync/pkg/api"
)

// Transport attempts to apply one queued mutation to the server.
// A *api.ConflictError return means the server rejected the write
// because the record diverged; any other error is a transient failure.
//
//go:generate moq -out transport_mock.go . Transport
type Transport interface {
	Apply(ctx context.Context, m *models.PendingMutation) error
}

// DrainResult summarizes one drain run.
type DrainResult struct {
	Attempted int
	Applied   int
	Failed    int
	Skipped   int
	Conflicts int
}

// Orchestrator drains the pending mutation queue against the transport.
//
// Прогон строго последовательный: мутации по одной сущности никогда не
// переупорядочиваются. Повторный запуск во время активного прогона -
// безвредный no-op.
type Orchestrator struct {
	state     *appstate.Store
	queue     storage.QueueStorage
	transport Transport
	logger    *slog.Logger

	mu sync.Mutex
}

// New creates an orchestrator over the state store and transport.
func New(state *appstate.Store, queue storage.QueueStorage, transport Transport, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		state:     state,
		queue:     queue,
		transport: transport,
		logger:    logger,
	}
}

// Drain attempts every pending mutation in FIFO order. Offline, or with
// a drain already in flight, it returns immediately. One item's failure
// never blocks subsequent items; losing connectivity mid-loop stops the
// run and leaves the remainder pending.
func (o *Orchestrator) Drain(ctx context.Context) (DrainResult, error) {
	var result DrainResult

	if !o.state.IsOnline() {
		return result, nil
	}
	if !o.mu.TryLock() {
		return result, nil
	}
	defer o.mu.Unlock()

	o.state.SetSyncing(true)
	defer o.state.SetSyncing(false)

	var pending []*models.PendingMutation
	for _, m := range o.state.SyncQueue() {
		if m.IsPending() {
			pending = append(pending, m)
		}
	}

	total := len(pending)
	completed := true

	for i, m := range pending {
		if ctx.Err() != nil {
			completed = false
			break
		}
		if !o.state.IsOnline() {
			o.logger.Info("connectivity lost, stopping drain", "remaining", total-i)
			completed = false
			break
		}

		o.state.SetProgress(&models.SyncProgress{
			Current:    i + 1,
			Total:      total,
			Percentage: float64(i+1) / float64(total) * 100,
		})

		if o.skipOnMetered(m) {
			result.Skipped++
			continue
		}

		// Запись могла быть удалена конкурентным прогоном
		if _, err := o.queue.GetMutation(ctx, m.ID); err != nil {
			if errors.Is(err, storage.ErrMutationNotFound) {
				result.Skipped++
				continue
			}
			o.logger.Warn("failed to recheck mutation", "mutation_id", m.ID, "error", err)
		}

		result.Attempted++
		o.apply(ctx, m, &result)
	}

	if completed {
		o.state.SetLastSyncTime(ctx, time.Now().UnixMilli())
	}

	o.logger.Info("drain finished",
		"attempted", result.Attempted,
		"applied", result.Applied,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"conflicts", result.Conflicts,
	)

	return result, nil
}

func (o *Orchestrator) apply(ctx context.Context, m *models.PendingMutation, result *DrainResult) {
	syncing := m.Clone()
	syncing.Status = models.StatusSyncing
	if err := o.state.UpdateMutation(ctx, syncing); err != nil {
		o.logger.Warn("failed to mark mutation syncing", "mutation_id", m.ID, "error", err)
	}

	err := o.transport.Apply(ctx, syncing)
	if err == nil {
		if err := o.state.RemovePendingSync(ctx, m.ID); err != nil {
			o.logger.Warn("failed to remove applied mutation", "mutation_id", m.ID, "error", err)
		}
		result.Applied++
		return
	}

	var conflictErr *api.ConflictError
	if errors.As(err, &conflictErr) {
		o.state.AddConflict(ctx, &models.SyncConflict{
			EntityType:      m.EntityType,
			EntityID:        m.EntityID,
			LocalData:       m.Payload,
			ServerData:      conflictErr.ServerData,
			LocalTimestamp:  m.Timestamp,
			ServerTimestamp: conflictErr.ServerTimestamp,
		})
		result.Conflicts++
	}

	o.logger.Warn("failed to apply mutation",
		"mutation_id", m.ID,
		"entity_type", m.EntityType,
		"retry_count", m.RetryCount+1,
		"error", err,
	)

	failed := m.Clone()
	failed.Status = models.StatusFailed
	failed.RetryCount = m.RetryCount + 1
	if err := o.state.UpdateMutation(ctx, failed); err != nil {
		o.logger.Warn("failed to mark mutation failed", "mutation_id", m.ID, "error", err)
	}
	result.Failed++
}

// skipOnMetered consults the cellular gates: on a metered connection,
// payloads above maxBatchSize are held back unless syncOnCellular is
// set, and media payloads unless syncPhotosOnCellular is set. Skipped
// items stay pending for the next drain on an unmetered connection.
func (o *Orchestrator) skipOnMetered(m *models.PendingMutation) bool {
	if !o.state.NetworkQuality().Metered() {
		return false
	}

	prefs := o.state.Preferences()
	if !prefs.SyncOnCellular && payloadSize(m) > prefs.MaxBatchSize {
		o.logger.Info("skipping large payload on metered connection", "mutation_id", m.ID)
		return true
	}
	if !prefs.SyncPhotosOnCellular && isMedia(m) {
		o.logger.Info("skipping media payload on metered connection", "mutation_id", m.ID)
		return true
	}
	return false
}

func payloadSize(m *models.PendingMutation) int64 {
	data, err := json.Marshal(m.Payload)
	if err != nil {
		return 0
	}
	return int64(len(data))
}

func isMedia(m *models.PendingMutation) bool {
	if m.EntityType == "photo" || m.EntityType == "attachment" {
		return true
	}
	mimeType, _ := m.Payload["mime_type"].(string)
	return strings.HasPrefix(mimeType, "image/") || strings.HasPrefix(mimeType, "video/")
}
