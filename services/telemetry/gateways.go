package telemetry

import (
	"context"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/buspulse/buspulse/services/telemetry TelemetryGW

// TelemetryGW defines the telemetry gateway interface
type TelemetryGW interface {
	// PublishFixReceived announces a stored fix to downstream
	// consumers. Failures must not affect the ingestion response.
	PublishFixReceived(ctx context.Context, event *models.FixReceivedEvent) error
}
