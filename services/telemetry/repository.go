package telemetry

import (
	"context"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/buspulse/buspulse/services/telemetry FixRepo

// FixRepo is the latest-fix-per-device store. Upsert replaces the
// whole record for the device; Get returns models.ErrFixNotFound for
// devices that never reported.
type FixRepo interface {
	Upsert(ctx context.Context, fix *models.LocationFix) error
	Get(ctx context.Context, deviceID string) (*models.LocationFix, error)
}
