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

// AddConflict records a detected conflict. The call is idempotent two
// ways: a duplicate ID is ignored, and so is a second active conflict
// for the same entity. The record is persisted best-effort; a storage
// failure keeps the conflict visible in memory.
func (s *Store) AddConflict(ctx context.Context, c *models.SyncConflict) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UnixMilli()
	if c.CreatedAt == 0 {
		c.CreatedAt = now
	}
	if c.DetectedAt == 0 {
		c.DetectedAt = now
	}

	s.mu.Lock()
	if !s.active.add(c) {
		s.mu.Unlock()
		return
	}
	s.state.Conflicts = s.active.list()
	s.state.ConflictCount = s.active.size()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	if err := s.conflicts.SaveConflict(ctx, c); err != nil {
		s.logger.Warn("failed to persist conflict", "conflict_id", c.ID, "error", err)
	}
}

// Conflicts returns the active (unresolved) conflicts in detection order.
func (s *Store) Conflicts() []*models.SyncConflict {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active.list()
}

// ConflictCount returns the number of active conflicts.
func (s *Store) ConflictCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ConflictCount
}

// LoadConflicts rebuilds the active conflict set from the durable log.
// Storage failures degrade to an empty set and are logged.
func (s *Store) LoadConflicts(ctx context.Context) {
	conflicts, err := s.conflicts.ListUnresolvedConflicts(ctx)
	if err != nil {
		s.logger.Warn("failed to load conflicts", "error", err)
		conflicts = nil
	}

	s.mu.Lock()
	s.active.replace(conflicts)
	s.state.Conflicts = s.active.list()
	s.state.ConflictCount = s.active.size()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// UpdateConflictCount recomputes the unresolved count from the durable
// log. Backends without a resolved index fall back to a full list plus
// a filter. Storage failures degrade to zero.
func (s *Store) UpdateConflictCount(ctx context.Context) {
	count, err := s.conflicts.CountUnresolvedConflicts(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrIndexUnsupported) {
			s.logger.Warn("failed to count conflicts", "error", err)
		}
		count = s.countUnresolvedByScan(ctx)
	}

	s.mu.Lock()
	s.state.ConflictCount = count
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

func (s *Store) countUnresolvedByScan(ctx context.Context) int {
	conflicts, err := s.conflicts.ListConflicts(ctx)
	if err != nil {
		s.logger.Warn("failed to list conflicts for count", "error", err)
		return 0
	}

	count := 0
	for _, c := range conflicts {
		if !c.Resolved {
			count++
		}
	}
	return count
}

// ResolveConflict applies a resolution strategy to a recorded conflict
// and returns the winning data. The conflict record is kept for audit
// with Resolved set, never deleted. Resolving an unknown ID is a no-op
// returning nil data and no error.
func (s *Store) ResolveConflict(ctx context.Context, id string, strategy models.ResolutionStrategy, merged map[string]any) (map[string]any, error) {
	c, err := s.conflicts.GetConflict(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrConflictNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load conflict: %w", err)
	}

	var resolved map[string]any
	switch strategy {
	case models.ResolveLocal:
		resolved = c.LocalData
	case models.ResolveServer:
		resolved = c.ServerData
	case models.ResolveMerge:
		if merged == nil {
			return nil, fmt.Errorf("merge resolution for conflict %s requires merged data", id)
		}
		resolved = merged
	default:
		return nil, fmt.Errorf("unknown resolution strategy: %s", strategy)
	}

	c.Resolved = true
	if err := s.conflicts.SaveConflict(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to mark conflict resolved: %w", err)
	}

	s.mu.Lock()
	s.active.remove(id)
	s.state.Conflicts = s.active.list()
	s.state.ConflictCount = s.active.size()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	return resolved, nil
}
