package alerts

import (
	"context"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/buspulse/buspulse/services/alerts AlertUC

// AlertUC represents the arrival alert usecase interface. Scheduling
// is fire-and-forget: once a trigger is registered with the
// notification facility it repeats daily with no further involvement
// from this service.
type AlertUC interface {
	ScheduleAlert(ctx context.Context, route *models.Route, stop *models.Stop, leadMinutes int) (*models.RecurringTrigger, error)
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/buspulse/buspulse/services/alerts NotifyGW

// NotifyGW defines the notification facility gateway interface
type NotifyGW interface {
	RequestPermission(ctx context.Context) (*models.PermissionReply, error)
	RegisterRecurring(ctx context.Context, trigger *models.RecurringTrigger) error
}
