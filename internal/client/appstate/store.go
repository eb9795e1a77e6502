package appstate

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

// State представляет наблюдаемое состояние синхронизации, на срезы
// которого подписывается UI. Все значения - снимки: подписчики не должны
// модифицировать слайсы и мапы внутри State.
type State struct {
	SyncProgress   *models.SyncProgress
	NetworkQuality *models.NetworkQuality
	StorageQuota   *models.StorageQuota
	Conflicts      []*models.SyncConflict
	SyncQueue      []*models.PendingMutation
	Preferences    models.SyncPreferences
	LastSyncTime   int64
	PendingSyncs   int
	ConflictCount  int
	IsOnline       bool
	IsSyncing      bool
}

// Store is the process-wide application state container for the offline
// sync engine. It owns the in-memory projections of the durable mutation
// log and exposes the queue-manager and conflict-resolver operations.
//
// The store is constructed explicitly and injected into consumers; it is
// not ambient global state. The in-memory projection is a filtered view
// reloaded from the durable log on demand: callers must reload explicitly,
// the store never assumes the log changed underneath it.
type Store struct {
	queue     storage.QueueStorage
	conflicts storage.ConflictStorage
	meta      storage.MetaStorage
	logger    *slog.Logger

	mu     sync.RWMutex
	state  State
	active *activeSet
	subs   map[int]func(State)
	nextID int
}

// New creates a new application state store over the durable mutation log.
func New(queue storage.QueueStorage, conflicts storage.ConflictStorage, meta storage.MetaStorage, logger *slog.Logger) *Store {
	return &Store{
		queue:     queue,
		conflicts: conflicts,
		meta:      meta,
		logger:    logger,
		active:    newActiveSet(),
		subs:      make(map[int]func(State)),
		state: State{
			Preferences: models.DefaultPreferences(),
		},
	}
}

// Init loads the persisted projections: preferences, last sync time,
// the sync queue and unresolved conflicts. Storage failures degrade to
// defaults and are logged, never returned.
func (s *Store) Init(ctx context.Context) {
	prefs, err := s.meta.GetPreferences(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrPreferencesNotFound) {
			s.logger.Warn("failed to load preferences, using defaults", "error", err)
		}
		prefs = models.DefaultPreferences()
	}

	lastSync, err := s.meta.GetLastSyncTime(ctx)
	if err != nil {
		s.logger.Warn("failed to load last sync time", "error", err)
		lastSync = 0
	}

	s.mu.Lock()
	s.state.Preferences = prefs
	s.state.LastSyncTime = lastSync
	s.mu.Unlock()

	s.LoadSyncQueue(ctx)
	s.LoadConflicts(ctx)
}

// Subscribe registers a listener invoked with a state snapshot after every
// state change. Returns an unsubscribe function.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// snapshotLocked копирует состояние; слайсы копируются, чтобы подписчики
// не наблюдали последующие мутации.
func (s *Store) snapshotLocked() State {
	snap := s.state
	if s.state.Conflicts != nil {
		snap.Conflicts = make([]*models.SyncConflict, len(s.state.Conflicts))
		copy(snap.Conflicts, s.state.Conflicts)
	}
	if s.state.SyncQueue != nil {
		snap.SyncQueue = make([]*models.PendingMutation, len(s.state.SyncQueue))
		copy(snap.SyncQueue, s.state.SyncQueue)
	}
	return snap
}

// notifyLocked собирает подписчиков под локом; сами коллбеки вызываются
// уже без лока.
func (s *Store) notifyLocked() func() {
	if len(s.subs) == 0 {
		return func() {}
	}

	snap := s.snapshotLocked()
	listeners := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}

	return func() {
		for _, fn := range listeners {
			fn(snap)
		}
	}
}

// IsOnline reports the current connectivity state.
func (s *Store) IsOnline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsOnline
}

// SetOnline records a connectivity transition. Going online refreshes the
// pending count so the UI badge is fresh right after a reconnect.
func (s *Store) SetOnline(ctx context.Context, online bool) {
	s.mu.Lock()
	wasOnline := s.state.IsOnline
	s.state.IsOnline = online
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	if online && !wasOnline {
		s.UpdatePendingSyncs(ctx)
	}
}

// SetSyncing flags an in-flight drain. Clearing it also clears the
// progress triple, which only exists while syncing.
func (s *Store) SetSyncing(syncing bool) {
	s.mu.Lock()
	s.state.IsSyncing = syncing
	if !syncing {
		s.state.SyncProgress = nil
	}
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// SetProgress publishes drain progress.
func (s *Store) SetProgress(p *models.SyncProgress) {
	s.mu.Lock()
	s.state.SyncProgress = p
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// SetLastSyncTime records the completion time of a successful drain and
// persists it best-effort.
func (s *Store) SetLastSyncTime(ctx context.Context, ts int64) {
	s.mu.Lock()
	s.state.LastSyncTime = ts
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	if err := s.meta.SaveLastSyncTime(ctx, ts); err != nil {
		s.logger.Warn("failed to persist last sync time", "error", err)
	}
}

// SetNetworkQuality publishes an advisory network quality sample.
func (s *Store) SetNetworkQuality(q *models.NetworkQuality) {
	s.mu.Lock()
	s.state.NetworkQuality = q
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// NetworkQuality returns the last network quality sample, possibly nil.
func (s *Store) NetworkQuality() *models.NetworkQuality {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.NetworkQuality
}

// SetStorageQuota publishes a storage capacity sample.
func (s *Store) SetStorageQuota(q *models.StorageQuota) {
	s.mu.Lock()
	s.state.StorageQuota = q
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// Preferences returns the current sync preferences.
func (s *Store) Preferences() models.SyncPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Preferences
}

// UpdatePreferences applies a shallow merge of the patch onto the current
// preferences and persists the result best-effort. The merge is always
// complete: unset patch fields keep their previous values.
func (s *Store) UpdatePreferences(ctx context.Context, patch models.PreferencesPatch) models.SyncPreferences {
	s.mu.Lock()
	merged := s.state.Preferences.Merge(patch)
	s.state.Preferences = merged
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	if err := s.meta.SavePreferences(ctx, merged); err != nil {
		s.logger.Warn("failed to persist preferences", "error", err)
	}

	return merged
}
