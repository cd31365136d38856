package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/internal/utils"
	"github.com/buspulse/buspulse/services/routes"
)

// nearestStopPrecision is the geohash cell size used to prefilter
// candidate stops. Precision 5 cells are roughly 5km x 5km, wide
// enough that a tap near a cell border still finds its stop via the
// neighbor cells.
const nearestStopPrecision = 5

// RouteUC implements the routes.RouteUC interface
type RouteUC struct {
	repo routes.RouteRepo
}

// NewRouteUC creates a new route use case
func NewRouteUC(repo routes.RouteRepo) *RouteUC {
	return &RouteUC{repo: repo}
}

// ListRoutes returns the read-only route snapshot for a school.
func (uc *RouteUC) ListRoutes(ctx context.Context, schoolID string) ([]models.Route, error) {
	if schoolID == "" {
		return nil, errors.New("school_id is required")
	}
	return uc.repo.ListRoutes(ctx, schoolID)
}

// GetRoute returns a single route with its stops.
func (uc *RouteUC) GetRoute(ctx context.Context, routeID string) (*models.Route, error) {
	return uc.repo.GetRoute(ctx, routeID)
}

// NearestStop resolves a coordinate to the closest stop across all
// routes of a school. Stops are prefiltered by geohash cell; when the
// filter leaves nothing (sparse rural routes), every stop is scanned.
func (uc *RouteUC) NearestStop(ctx context.Context, schoolID string, lat, lng float64) (*models.NearestStopResult, error) {
	allRoutes, err := uc.repo.ListRoutes(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	tap := utils.GeoPoint{Latitude: lat, Longitude: lng}
	tapHash := utils.EncodeLocation(tap, nearestStopPrecision)
	cells := map[string]bool{tapHash: true}
	for _, n := range utils.GetNeighbors(tapHash) {
		cells[n] = true
	}

	best := findNearest(allRoutes, tap, cells)
	if best == nil {
		// fall back to a full scan
		best = findNearest(allRoutes, tap, nil)
	}
	if best == nil {
		return nil, fmt.Errorf("%w: school %s has no stops", routes.ErrNoStops, schoolID)
	}

	return best, nil
}

// findNearest scans stops for the closest one to tap. A non-nil cells
// set restricts the scan to stops whose geohash falls in the set.
func findNearest(allRoutes []models.Route, tap utils.GeoPoint, cells map[string]bool) *models.NearestStopResult {
	var best *models.NearestStopResult

	for _, route := range allRoutes {
		for _, stop := range route.Stops {
			point := utils.GeoPoint{Latitude: stop.Latitude, Longitude: stop.Longitude}
			if cells != nil && !cells[utils.EncodeLocation(point, nearestStopPrecision)] {
				continue
			}

			dist := utils.CalculateDistance(tap, point)
			if best == nil || dist < best.DistanceKm {
				best = &models.NearestStopResult{
					Stop:       stop,
					RouteID:    route.ID,
					DistanceKm: dist,
				}
			}
		}
	}

	return best
}
