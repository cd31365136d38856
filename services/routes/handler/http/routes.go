package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/utils"
	"github.com/buspulse/buspulse/services/routes"
)

// RouteHandler handles HTTP requests for route reference data
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{routeUC: routeUC}
}

// ListRoutes lists all routes of a school with their stops
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	schoolID := c.QueryParam("school_id")
	if schoolID == "" {
		return utils.BadRequestResponse(c, "school_id is required")
	}

	result, err := h.routeUC.ListRoutes(c.Request().Context(), schoolID)
	if err != nil {
		logger.Error("Failed to list routes",
			logger.String("school_id", schoolID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list routes")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved", result)
}

// GetRoute returns one route with its stops
func (h *RouteHandler) GetRoute(c echo.Context) error {
	routeID := c.Param("id")
	if routeID == "" {
		return utils.BadRequestResponse(c, "route id is required")
	}

	route, err := h.routeUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		if errors.Is(err, routes.ErrRouteNotFound) {
			return utils.NotFoundResponse(c, "route not found")
		}
		logger.Error("Failed to get route",
			logger.String("route_id", routeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved", route)
}

// NearestStop resolves a tapped coordinate to the closest stop
func (h *RouteHandler) NearestStop(c echo.Context) error {
	schoolID := c.QueryParam("school_id")
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")

	if schoolID == "" || latStr == "" || lngStr == "" {
		return utils.BadRequestResponse(c, "school_id, lat, and lng are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	result, err := h.routeUC.NearestStop(c.Request().Context(), schoolID, lat, lng)
	if err != nil {
		if errors.Is(err, routes.ErrNoStops) {
			return utils.NotFoundResponse(c, "no stop found")
		}
		logger.Error("Failed to resolve nearest stop",
			logger.String("school_id", schoolID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to resolve nearest stop")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearest stop resolved", result)
}
