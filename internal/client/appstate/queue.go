package appstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

// Enqueue appends a mutation to the durable log and mirrors it into the
// in-memory queue. Missing fields are filled in: a random ID, current
// timestamps and pending status. The write must land in the log before
// state changes, so a storage failure leaves state untouched.
func (s *Store) Enqueue(ctx context.Context, m *models.PendingMutation) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UnixMilli()
	if m.CreatedAt == 0 {
		m.CreatedAt = now
	}
	if m.Timestamp == 0 {
		m.Timestamp = now
	}
	if m.Status == "" {
		m.Status = models.StatusPending
	}

	if err := s.queue.SaveMutation(ctx, m); err != nil {
		return fmt.Errorf("failed to enqueue mutation: %w", err)
	}

	s.mu.Lock()
	replaced := false
	for i, existing := range s.state.SyncQueue {
		if existing.ID == m.ID {
			s.state.SyncQueue[i] = m
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.SyncQueue = append(s.state.SyncQueue, m)
	}
	s.state.PendingSyncs = countPending(s.state.SyncQueue)
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	return nil
}

// SyncQueue returns the in-memory queue in insertion order.
func (s *Store) SyncQueue() []*models.PendingMutation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PendingMutation, len(s.state.SyncQueue))
	copy(out, s.state.SyncQueue)
	return out
}

// PendingSyncs returns the current pending count.
func (s *Store) PendingSyncs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.PendingSyncs
}

// LoadSyncQueue reloads the in-memory queue from the durable log.
// Storage failures degrade to an empty queue and are logged.
func (s *Store) LoadSyncQueue(ctx context.Context) {
	mutations, err := s.queue.ListMutations(ctx)
	if err != nil {
		s.logger.Warn("failed to load sync queue", "error", err)
		mutations = nil
	}

	s.mu.Lock()
	s.state.SyncQueue = mutations
	s.state.PendingSyncs = countPending(mutations)
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// UpdatePendingSyncs recomputes the pending count from the durable log.
// The indexed count is preferred; backends without a status index fall
// back to a full list plus a filter. Storage failures degrade to zero.
func (s *Store) UpdatePendingSyncs(ctx context.Context) {
	count, err := s.queue.CountMutationsByStatus(ctx, models.StatusPending)
	if err != nil {
		if !errors.Is(err, storage.ErrIndexUnsupported) {
			s.logger.Warn("failed to count pending mutations", "error", err)
		}
		count = s.countPendingByScan(ctx)
	}

	s.mu.Lock()
	s.state.PendingSyncs = count
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

func (s *Store) countPendingByScan(ctx context.Context) int {
	mutations, err := s.queue.ListMutations(ctx)
	if err != nil {
		s.logger.Warn("failed to list mutations for pending count", "error", err)
		return 0
	}
	return countPending(mutations)
}

// RemovePendingSync deletes one mutation from the log and the in-memory
// queue. The pending count is recomputed from the resulting in-memory
// list rather than re-read from the log.
func (s *Store) RemovePendingSync(ctx context.Context, id string) error {
	if err := s.queue.DeleteMutation(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mutation: %w", err)
	}

	s.mu.Lock()
	for i, m := range s.state.SyncQueue {
		if m.ID == id {
			s.state.SyncQueue = append(s.state.SyncQueue[:i], s.state.SyncQueue[i+1:]...)
			break
		}
	}
	s.state.PendingSyncs = countPending(s.state.SyncQueue)
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	return nil
}

// UpdateMutation writes a modified mutation back to the log and the
// in-memory queue. The record keeps its queue position.
func (s *Store) UpdateMutation(ctx context.Context, m *models.PendingMutation) error {
	if err := s.queue.SaveMutation(ctx, m); err != nil {
		return fmt.Errorf("failed to update mutation: %w", err)
	}

	s.mu.Lock()
	for i, existing := range s.state.SyncQueue {
		if existing.ID == m.ID {
			s.state.SyncQueue[i] = m
			break
		}
	}
	s.state.PendingSyncs = countPending(s.state.SyncQueue)
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	return nil
}

// ClearSyncQueue drops every queued mutation from the log and memory.
func (s *Store) ClearSyncQueue(ctx context.Context) error {
	if err := s.queue.ClearMutations(ctx); err != nil {
		return fmt.Errorf("failed to clear sync queue: %w", err)
	}

	s.mu.Lock()
	s.state.SyncQueue = nil
	s.state.PendingSyncs = 0
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	return nil
}

func countPending(mutations []*models.PendingMutation) int {
	count := 0
	for _, m := range mutations {
		if m.IsPending() {
			count++
		}
	}
	return count
}
