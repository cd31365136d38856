package monitor

import (
	"context"
	"errors"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

var (
	// ErrNotMonitored is returned for routes without a running monitor.
	ErrNotMonitored = errors.New("route is not monitored")

	// ErrAlreadyMonitored is returned when a monitor is already
	// running for the route.
	ErrAlreadyMonitored = errors.New("route is already monitored")
)

//go:generate mockgen -destination=mocks/mock_reader.go -package=mocks github.com/buspulse/buspulse/services/monitor FixReader

// FixReader reads the latest fix for a device. The read happens over
// the telemetry service's HTTP API: the monitor runs in a different
// process than the gateway and never touches the store directly.
type FixReader interface {
	GetLastFix(ctx context.Context, deviceID string) (*models.LocationFix, error)
}

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/buspulse/buspulse/services/monitor MonitorUC

// MonitorUC represents the freshness monitor usecase interface
type MonitorUC interface {
	Start(routeID, deviceID string) error
	Stop(routeID string) error
	State(routeID string) (*models.FreshnessState, error)
	StopAll()
}
