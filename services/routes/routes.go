package routes

import (
	"context"
	"errors"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

var (
	// ErrRouteNotFound is returned for unknown route IDs.
	ErrRouteNotFound = errors.New("route not found")

	// ErrNoStops is returned when a school has no stops to resolve
	// a coordinate against.
	ErrNoStops = errors.New("no stops found")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/buspulse/buspulse/services/routes RouteUC

// RouteUC represents the route reference data usecase interface.
// Routes and stops are read-only snapshots owned by the school's
// administration; this service never mutates them.
type RouteUC interface {
	ListRoutes(ctx context.Context, schoolID string) ([]models.Route, error)
	GetRoute(ctx context.Context, routeID string) (*models.Route, error)

	// NearestStop resolves a tapped coordinate to the closest stop
	// across all routes of a school.
	NearestStop(ctx context.Context, schoolID string, lat, lng float64) (*models.NearestStopResult, error)
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/buspulse/buspulse/services/routes RouteRepo

// RouteRepo defines the route repository interface
type RouteRepo interface {
	ListRoutes(ctx context.Context, schoolID string) ([]models.Route, error)
	GetRoute(ctx context.Context, routeID string) (*models.Route, error)
}
