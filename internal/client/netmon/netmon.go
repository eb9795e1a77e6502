package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ddanilov/sitesync/internal/client/appstate"
	"github.com/ddanilov/sitesync/internal/client/orchestrator"
	"github.com/ddanilov/sitesync/internal/models"
)

// EventSource delivers connectivity transitions from the runtime.
type EventSource interface {
	Subscribe(ctx context.Context, handler func(online bool)) (func(), error)
}

// QuotaSampler measures local durable-storage capacity.
type QuotaSampler interface {
	SampleQuota(ctx context.Context) (*models.StorageQuota, error)
}

// QualitySampler measures network quality. Advisory only; the monitor
// works without one.
type QualitySampler interface {
	SampleQuality(ctx context.Context) (*models.NetworkQuality, error)
}

// Drainer triggers a sync run on reconnect.
type Drainer interface {
	Drain(ctx context.Context) (orchestrator.DrainResult, error)
}

// Monitor tracks online/offline transitions and periodically samples
// storage capacity and network quality into the state store.
//
// Ошибки сэмплирования логируются и игнорируются: мониторинг никогда не
// мешает основной работе.
type Monitor struct {
	state    *appstate.Store
	events   EventSource
	quota    QuotaSampler
	quality  QualitySampler
	drainer  Drainer
	interval time.Duration
	logger   *slog.Logger
}

// New creates a monitor sampling at the given interval.
func New(state *appstate.Store, events EventSource, quota QuotaSampler, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		state:    state,
		events:   events,
		quota:    quota,
		interval: interval,
		logger:   logger,
	}
}

// SetQualitySampler attaches an optional network quality sampler.
func (m *Monitor) SetQualitySampler(s QualitySampler) {
	m.quality = s
}

// SetDrainer attaches the orchestrator triggered on reconnect when
// autoSync is enabled.
func (m *Monitor) SetDrainer(d Drainer) {
	m.drainer = d
}

// Start wires the connectivity events and the periodic sampler. Returns
// a single teardown function removing the listener and stopping the
// timer; calling it more than once is safe.
func (m *Monitor) Start(ctx context.Context) (func(), error) {
	unsubscribe, err := m.events.Subscribe(ctx, func(online bool) {
		m.handleTransition(ctx, online)
	})
	if err != nil {
		return nil, err
	}

	stopCh := make(chan struct{})
	go m.run(ctx, stopCh)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			unsubscribe()
			close(stopCh)
		})
	}
	return stop, nil
}

func (m *Monitor) run(ctx context.Context, stopCh <-chan struct{}) {
	m.sample(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *Monitor) handleTransition(ctx context.Context, online bool) {
	m.logger.Info("connectivity changed", "online", online)
	m.state.SetOnline(ctx, online)

	if !online || m.drainer == nil {
		return
	}
	if !m.state.Preferences().AutoSync {
		return
	}

	result, err := m.drainer.Drain(ctx)
	if err != nil {
		m.logger.Warn("auto-sync failed", "error", err)
		return
	}
	m.logger.Info("auto-sync finished", "applied", result.Applied, "failed", result.Failed)
}

func (m *Monitor) sample(ctx context.Context) {
	quota, err := m.quota.SampleQuota(ctx)
	if err != nil {
		m.logger.Warn("storage quota sampling failed", "error", err)
	} else {
		m.state.SetStorageQuota(quota)
	}

	if m.quality == nil {
		return
	}
	quality, err := m.quality.SampleQuality(ctx)
	if err != nil {
		m.logger.Warn("network quality sampling failed", "error", err)
		return
	}
	m.state.SetNetworkQuality(quality)
}
