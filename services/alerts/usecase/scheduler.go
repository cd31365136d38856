package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/alerts"
)

const (
	minutesPerDay = 24 * 60

	defaultRequestTimeout = 10 * time.Second
)

// AlertUC schedules recurring arrival alerts through the notification
// facility. Every facility round trip is bounded by the configured
// request timeout so a hung facility cannot block the caller.
type AlertUC struct {
	notifyGW       alerts.NotifyGW
	requestTimeout time.Duration
}

// NewAlertUC creates an alert usecase from alerts configuration.
func NewAlertUC(notifyGW alerts.NotifyGW, cfg models.AlertsConfig) *AlertUC {
	requestTimeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &AlertUC{
		notifyGW:       notifyGW,
		requestTimeout: requestTimeout,
	}
}

// ScheduleAlert registers a daily trigger firing leadMinutes before the
// stop's scheduled time. Subtraction wraps across midnight, so an alert
// 10 minutes before a 00:05 stop fires at 23:55 the previous evening.
func (uc *AlertUC) ScheduleAlert(ctx context.Context, route *models.Route, stop *models.Stop, leadMinutes int) (*models.RecurringTrigger, error) {
	hour, minute, err := parseStopTime(stop.Time)
	if err != nil {
		return nil, err
	}

	total := hour*60 + minute - leadMinutes
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay

	permCtx, cancel := context.WithTimeout(ctx, uc.requestTimeout)
	reply, err := uc.notifyGW.RequestPermission(permCtx)
	cancel()
	if err != nil {
		return nil, &models.SchedulingError{Reason: "permission check failed", Err: err}
	}
	if !reply.Granted {
		logger.Info("Notification permission denied",
			logger.String("route_id", route.ID),
			logger.String("reason", reply.Reason))
		return nil, models.ErrNotificationPermissionDenied
	}

	trigger := &models.RecurringTrigger{
		ID:     uuid.NewString(),
		Hour:   total / 60,
		Minute: total % 60,
		Message: fmt.Sprintf("Your bus for %s will arrive at %s in %d minutes.",
			route.Name, stop.Location, leadMinutes),
	}

	registerCtx, cancel := context.WithTimeout(ctx, uc.requestTimeout)
	err = uc.notifyGW.RegisterRecurring(registerCtx, trigger)
	cancel()
	if err != nil {
		return nil, &models.SchedulingError{Reason: "trigger registration failed", Err: err}
	}

	logger.Info("Registered arrival alert",
		logger.String("trigger_id", trigger.ID),
		logger.String("route_id", route.ID),
		logger.Int("stop_number", stop.StopNumber),
		logger.Int("fire_hour", trigger.Hour),
		logger.Int("fire_minute", trigger.Minute))

	return trigger, nil
}

// parseStopTime parses a local HH:MM wall-clock string.
func parseStopTime(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", models.ErrInvalidScheduleTime, value)
	}

	return t.Hour(), t.Minute(), nil
}
