package detector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Change is one delivered change-feed notification for a single record.
// Author identifies who made the change; an empty author means the
// attribution is unknown.
type Change struct {
	New    map[string]any
	Old    map[string]any
	Author string
}

// Filter scopes a subscription to exactly one record.
type Filter struct {
	EntityType string
	EntityID   string
}

// Subscription delivers change notifications for a single record.
// Subscribe returns an unsubscribe function tearing the stream down.
//
//go:generate moq -out subscription_mock.go . Subscription
type Subscription interface {
	Subscribe(ctx context.Context, filter Filter, handler func(Change)) (func(), error)
}

// Conflict is the in-memory, per-edit-session conflict held while a user
// is actively editing a record. It is distinct from the durable conflict
// records kept in the mutation log.
type Conflict struct {
	LocalData  map[string]any
	ServerData map[string]any
	DetectedAt int64
}

// Detector watches the change feed of one record being edited and decides
// whether an incoming change conflicts with the in-progress local edit.
//
// Детекция идет по автору, не по значениям: конфликт есть тогда и только
// тогда, когда локальные данные присутствуют и автор изменения - не
// текущий пользователь. Отсутствие автора трактуется консервативно как
// чужое изменение.
type Detector struct {
	source Subscription
	logger *slog.Logger

	mu          sync.Mutex
	actor       string
	filter      Filter
	localData   map[string]any
	enabled     bool
	unsubscribe func()
	conflict    *Conflict
	onConflict  func(Conflict)
}

// New creates a detector for the given actor. The detector starts
// disabled and untargeted; call SetTarget and SetEnabled to arm it.
func New(source Subscription, actor string, logger *slog.Logger) *Detector {
	return &Detector{
		source: source,
		actor:  actor,
		logger: logger,
	}
}

// SetOnConflict registers a callback invoked when a conflict is detected.
func (d *Detector) SetOnConflict(fn func(Conflict)) {
	d.mu.Lock()
	d.onConflict = fn
	d.mu.Unlock()
}

// SetLocalData records the in-progress local edit. Nil means no edit is
// in progress and disables detection until data is supplied again.
func (d *Detector) SetLocalData(data map[string]any) {
	d.mu.Lock()
	d.localData = data
	d.mu.Unlock()
}

// SetTarget points the detector at a record, tearing down and
// re-establishing the underlying subscription when enabled.
func (d *Detector) SetTarget(ctx context.Context, filter Filter) error {
	d.mu.Lock()
	d.filter = filter
	enabled := d.enabled
	d.teardownLocked()
	d.mu.Unlock()

	if !enabled {
		return nil
	}
	return d.subscribe(ctx)
}

// SetEnabled arms or disarms the detector. Disabling clears any active
// conflict and tears down the subscription; a disabled detector must not
// hold stale conflict state.
func (d *Detector) SetEnabled(ctx context.Context, enabled bool) error {
	d.mu.Lock()
	if d.enabled == enabled {
		d.mu.Unlock()
		return nil
	}
	d.enabled = enabled
	if !enabled {
		d.conflict = nil
		d.teardownLocked()
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()

	return d.subscribe(ctx)
}

// Close tears down the subscription and drops any active conflict.
func (d *Detector) Close() {
	d.mu.Lock()
	d.enabled = false
	d.conflict = nil
	d.teardownLocked()
	d.mu.Unlock()
}

func (d *Detector) teardownLocked() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

func (d *Detector) subscribe(ctx context.Context) error {
	d.mu.Lock()
	filter := d.filter
	d.mu.Unlock()

	if filter.EntityID == "" {
		return nil
	}

	unsubscribe, err := d.source.Subscribe(ctx, filter, d.handleChange)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s/%s: %w", filter.EntityType, filter.EntityID, err)
	}

	d.mu.Lock()
	d.teardownLocked()
	d.unsubscribe = unsubscribe
	d.mu.Unlock()
	return nil
}

// handleChange applies the decision rule to one delivered notification.
func (d *Detector) handleChange(change Change) {
	d.mu.Lock()
	if !d.enabled || d.localData == nil {
		// Нет локальных данных - защищать нечего
		d.mu.Unlock()
		return
	}
	if change.Author != "" && change.Author == d.actor {
		// Собственное изменение конфликтом не считается
		d.mu.Unlock()
		return
	}

	conflict := Conflict{
		LocalData:  d.localData,
		ServerData: change.New,
		DetectedAt: time.Now().UnixMilli(),
	}
	d.conflict = &conflict
	callback := d.onConflict
	filter := d.filter
	d.mu.Unlock()

	d.logger.Info("conflict detected",
		"entity_type", filter.EntityType,
		"entity_id", filter.EntityID,
		"author", change.Author,
	)

	if callback != nil {
		callback(conflict)
	}
}

// HasConflict reports whether a conflict is currently active.
func (d *Detector) HasConflict() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conflict != nil
}

// Conflict returns the active conflict, or nil.
func (d *Detector) Conflict() *Conflict {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conflict
}

// DismissConflict discards the active conflict without touching data.
func (d *Detector) DismissConflict() {
	d.mu.Lock()
	d.conflict = nil
	d.mu.Unlock()
}

// AcceptServerChanges returns the stored server snapshot and clears the
// conflict. Returns nil when no conflict is active.
func (d *Detector) AcceptServerChanges() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conflict == nil {
		return nil
	}
	server := d.conflict.ServerData
	d.conflict = nil
	return server
}

// ResolveWithLocalChanges discards the server snapshot and returns the
// local data the caller should proceed with. Returns nil when no conflict
// is active.
func (d *Detector) ResolveWithLocalChanges() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conflict == nil {
		return nil
	}
	local := d.conflict.LocalData
	d.conflict = nil
	return local
}
