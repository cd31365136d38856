package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/utils"
	"github.com/buspulse/buspulse/services/monitor"
	"github.com/buspulse/buspulse/services/routes"
)

// MonitorHandler handles HTTP requests for freshness monitoring
type MonitorHandler struct {
	monitorUC monitor.MonitorUC
	routeUC   routes.RouteUC
}

// NewMonitorHandler creates a new monitor HTTP handler
func NewMonitorHandler(monitorUC monitor.MonitorUC, routeUC routes.RouteUC) *MonitorHandler {
	return &MonitorHandler{
		monitorUC: monitorUC,
		routeUC:   routeUC,
	}
}

// StartMonitor begins polling the route's vehicle
func (h *MonitorHandler) StartMonitor(c echo.Context) error {
	routeID := c.Param("id")
	if routeID == "" {
		return utils.BadRequestResponse(c, "route id is required")
	}

	route, err := h.routeUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		if errors.Is(err, routes.ErrRouteNotFound) {
			return utils.NotFoundResponse(c, "route not found")
		}
		logger.Error("Failed to load route for monitoring",
			logger.String("route_id", routeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to load route")
	}

	if route.DeviceID == "" {
		return utils.BadRequestResponse(c, "route has no tracking device")
	}

	if err := h.monitorUC.Start(routeID, route.DeviceID); err != nil {
		if errors.Is(err, monitor.ErrAlreadyMonitored) {
			return utils.ErrorResponseHandler(c, http.StatusConflict, "route is already monitored")
		}
		logger.Error("Failed to start monitor",
			logger.String("route_id", routeID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to start monitor")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monitor started",
		map[string]string{"route_id": routeID, "device_id": route.DeviceID})
}

// StopMonitor cancels the route's polling worker
func (h *MonitorHandler) StopMonitor(c echo.Context) error {
	routeID := c.Param("id")
	if routeID == "" {
		return utils.BadRequestResponse(c, "route id is required")
	}

	if err := h.monitorUC.Stop(routeID); err != nil {
		if errors.Is(err, monitor.ErrNotMonitored) {
			return utils.NotFoundResponse(c, "route is not monitored")
		}
		return utils.InternalServerErrorResponse(c, "failed to stop monitor")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monitor stopped",
		map[string]string{"route_id": routeID})
}

// GetFreshness returns the route's current position and stale flag
func (h *MonitorHandler) GetFreshness(c echo.Context) error {
	routeID := c.Param("id")
	if routeID == "" {
		return utils.BadRequestResponse(c, "route id is required")
	}

	state, err := h.monitorUC.State(routeID)
	if err != nil {
		if errors.Is(err, monitor.ErrNotMonitored) {
			return utils.NotFoundResponse(c, "route is not monitored")
		}
		return utils.InternalServerErrorResponse(c, "failed to read freshness state")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Freshness state retrieved", state)
}
