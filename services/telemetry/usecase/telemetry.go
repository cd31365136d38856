package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/pkg/metrics"
	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/telemetry"
)

// TelemetryUC implements the telemetry.TelemetryUC interface
type TelemetryUC struct {
	repo      telemetry.FixRepo
	gw        telemetry.TelemetryGW
	collector *metrics.Collector
}

// NewTelemetryUC creates a new telemetry use case
func NewTelemetryUC(repo telemetry.FixRepo, gw telemetry.TelemetryGW, collector *metrics.Collector) *TelemetryUC {
	return &TelemetryUC{
		repo:      repo,
		gw:        gw,
		collector: collector,
	}
}

// IngestFix validates the raw parameters, stamps the server receipt
// time and upserts the fix. The fix-received event is best-effort: a
// publish failure is logged and never fails the request.
func (uc *TelemetryUC) IngestFix(ctx context.Context, params map[string]string) (*models.LocationFix, error) {
	uc.collector.FixesReceived.Inc()

	fix, err := ParseFix(params)
	if err != nil {
		var invalid *models.InvalidFixError
		if errors.As(err, &invalid) && invalid.Missing {
			uc.collector.FixesRejected.WithLabelValues("missing_field").Inc()
		} else {
			uc.collector.FixesRejected.WithLabelValues("invalid_field").Inc()
		}
		return nil, err
	}

	// The device clock is never trusted for freshness; the server
	// assigns the receipt time at persistence.
	fix.ReceivedAt = time.Now().UTC()

	start := time.Now()
	if err := uc.repo.Upsert(ctx, fix); err != nil {
		uc.collector.StoreErrors.Inc()
		return nil, fmt.Errorf("failed to store fix: %w", err)
	}
	uc.collector.UpsertDuration.Observe(time.Since(start).Seconds())
	uc.collector.FixesStored.Inc()

	event := &models.FixReceivedEvent{
		DeviceID:   fix.DeviceID,
		Latitude:   fix.Latitude,
		Longitude:  fix.Longitude,
		FixTime:    fix.FixTime,
		ReceivedAt: fix.ReceivedAt,
	}
	if err := uc.gw.PublishFixReceived(ctx, event); err != nil {
		uc.collector.EventPublishErrs.Inc()
		logger.Warn("Failed to publish fix received event",
			logger.String("device_id", fix.DeviceID),
			logger.Err(err))
	} else {
		uc.collector.EventsPublished.Inc()
	}

	return fix, nil
}

// GetLastFix returns the most recent fix for a device.
func (uc *TelemetryUC) GetLastFix(ctx context.Context, deviceID string) (*models.LocationFix, error) {
	return uc.repo.Get(ctx, deviceID)
}
