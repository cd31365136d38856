package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/monitor"
)

const (
	defaultPollInterval   = 10 * time.Second
	defaultStaleThreshold = 300 * time.Second
)

// FreshnessTracker polls the telemetry read API per monitored route
// and derives an online/offline signal. One worker goroutine per
// route; workers never share a timer, so stopping or slowing one
// route cannot affect another.
type FreshnessTracker struct {
	reader         monitor.FixReader
	pollInterval   time.Duration
	staleThreshold time.Duration
	now            func() time.Time

	mu      sync.RWMutex
	states  map[string]models.FreshnessState
	workers map[string]context.CancelFunc
}

// NewFreshnessTracker creates a tracker from monitor configuration.
func NewFreshnessTracker(reader monitor.FixReader, cfg models.MonitorConfig) *FreshnessTracker {
	pollInterval := time.Duration(cfg.PollIntervalSec) * time.Second
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	staleThreshold := time.Duration(cfg.StaleThresholdSec) * time.Second
	if staleThreshold <= 0 {
		staleThreshold = defaultStaleThreshold
	}

	return &FreshnessTracker{
		reader:         reader,
		pollInterval:   pollInterval,
		staleThreshold: staleThreshold,
		now:            time.Now,
		states:         make(map[string]models.FreshnessState),
		workers:        make(map[string]context.CancelFunc),
	}
}

// Start begins polling for a route. The route is assumed offline
// until the first successful read proves otherwise.
func (t *FreshnessTracker) Start(routeID, deviceID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.workers[routeID]; exists {
		return monitor.ErrAlreadyMonitored
	}

	t.states[routeID] = models.FreshnessState{
		RouteID:  routeID,
		DeviceID: deviceID,
		IsStale:  true,
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.workers[routeID] = cancel

	go t.run(ctx, routeID, deviceID)

	logger.Info("Started freshness monitor",
		logger.String("route_id", routeID),
		logger.String("device_id", deviceID))

	return nil
}

// Stop cancels the route's worker and discards its state.
func (t *FreshnessTracker) Stop(routeID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cancel, exists := t.workers[routeID]
	if !exists {
		return monitor.ErrNotMonitored
	}

	cancel()
	delete(t.workers, routeID)
	delete(t.states, routeID)

	logger.Info("Stopped freshness monitor", logger.String("route_id", routeID))

	return nil
}

// State returns a copy of the route's current freshness state.
func (t *FreshnessTracker) State(routeID string) (*models.FreshnessState, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state, exists := t.states[routeID]
	if !exists {
		return nil, monitor.ErrNotMonitored
	}

	return &state, nil
}

// StopAll cancels every worker; used during shutdown.
func (t *FreshnessTracker) StopAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for routeID, cancel := range t.workers {
		cancel()
		delete(t.workers, routeID)
		delete(t.states, routeID)
	}
}

func (t *FreshnessTracker) run(ctx context.Context, routeID, deviceID string) {
	// First read immediately, then on the interval.
	t.tick(ctx, routeID, deviceID)

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(ctx, routeID, deviceID)
		}
	}
}

// tick performs one poll. A failed read carries no new information:
// the previous position is kept and staleness keeps being recomputed
// from the retained receipt time, so the threshold still elapses
// naturally while the read API is down.
func (t *FreshnessTracker) tick(ctx context.Context, routeID, deviceID string) {
	readCtx, cancel := context.WithTimeout(ctx, t.pollInterval)
	fix, err := t.reader.GetLastFix(readCtx, deviceID)
	cancel()

	t.mu.Lock()
	defer t.mu.Unlock()

	state, exists := t.states[routeID]
	if !exists {
		// stopped while the read was in flight
		return
	}

	if err != nil {
		if !errors.Is(err, models.ErrFixNotFound) {
			logger.Warn("Freshness poll failed",
				logger.String("route_id", routeID),
				logger.String("device_id", deviceID),
				logger.Err(err))
		}
	} else {
		state.Position = fix
		receivedAt := fix.ReceivedAt
		state.LastUpdate = &receivedAt
	}

	// Staleness is derived from the server-assigned receipt time only;
	// the device-supplied fixtime is never trusted for this.
	if state.LastUpdate == nil {
		state.IsStale = true
	} else {
		state.IsStale = t.now().Sub(*state.LastUpdate) > t.staleThreshold
	}

	t.states[routeID] = state
}
