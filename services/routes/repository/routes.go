package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/routes"
)

type routeRepo struct {
	db *sqlx.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sqlx.DB) routes.RouteRepo {
	return &routeRepo{db: db}
}

// ListRoutes retrieves all routes of a school with their stops in
// stop-number order.
func (r *routeRepo) ListRoutes(ctx context.Context, schoolID string) ([]models.Route, error) {
	query := `
		SELECT id, school_id, name, COALESCE(device_id, '') AS device_id
		FROM routes
		WHERE school_id = $1
		ORDER BY name
	`

	var result []models.Route
	if err := r.db.SelectContext(ctx, &result, query, schoolID); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	for i := range result {
		stops, err := r.listStops(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Stops = stops
	}

	return result, nil
}

// GetRoute retrieves a single route with its stops.
func (r *routeRepo) GetRoute(ctx context.Context, routeID string) (*models.Route, error) {
	query := `
		SELECT id, school_id, name, COALESCE(device_id, '') AS device_id
		FROM routes
		WHERE id = $1
	`

	var route models.Route
	if err := r.db.GetContext(ctx, &route, query, routeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, routes.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	stops, err := r.listStops(ctx, routeID)
	if err != nil {
		return nil, err
	}
	route.Stops = stops

	return &route, nil
}

func (r *routeRepo) listStops(ctx context.Context, routeID string) ([]models.Stop, error) {
	query := `
		SELECT route_id, stop_number, location, latitude, longitude, scheduled_time
		FROM stops
		WHERE route_id = $1
		ORDER BY stop_number
	`

	var stops []models.Stop
	if err := r.db.SelectContext(ctx, &stops, query, routeID); err != nil {
		return nil, fmt.Errorf("failed to list stops for route %s: %w", routeID, err)
	}

	return stops, nil
}
