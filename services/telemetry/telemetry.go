package telemetry

import (
	"context"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/buspulse/buspulse/services/telemetry TelemetryUC

// TelemetryUC represents the telemetry usecase interface
type TelemetryUC interface {
	// IngestFix validates raw webhook parameters, stamps the server
	// receipt time and persists the fix.
	IngestFix(ctx context.Context, params map[string]string) (*models.LocationFix, error)

	// GetLastFix returns the most recent fix for a device.
	GetLastFix(ctx context.Context, deviceID string) (*models.LocationFix, error)
}
