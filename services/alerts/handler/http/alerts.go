package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/internal/utils"
	"github.com/buspulse/buspulse/services/alerts"
	"github.com/buspulse/buspulse/services/routes"
)

const (
	minLeadMinutes = 1
	maxLeadMinutes = 30
)

// AlertHandler handles HTTP requests for arrival alerts
type AlertHandler struct {
	alertUC alerts.AlertUC
	routeUC routes.RouteUC
}

// NewAlertHandler creates a new alert HTTP handler
func NewAlertHandler(alertUC alerts.AlertUC, routeUC routes.RouteUC) *AlertHandler {
	return &AlertHandler{
		alertUC: alertUC,
		routeUC: routeUC,
	}
}

// CreateAlert registers a recurring arrival alert for a stop.
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req models.AlertRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.RouteID == "" {
		return utils.BadRequestResponse(c, "route_id is required")
	}
	if req.LeadMinutes < minLeadMinutes || req.LeadMinutes > maxLeadMinutes {
		return utils.BadRequestResponse(c, "lead_minutes must be between 1 and 30")
	}

	route, err := h.routeUC.GetRoute(c.Request().Context(), req.RouteID)
	if err != nil {
		if errors.Is(err, routes.ErrRouteNotFound) {
			return utils.NotFoundResponse(c, "route not found")
		}
		logger.Error("Failed to load route for alert",
			logger.String("route_id", req.RouteID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to load route")
	}

	stop := findStop(route, req.StopNumber)
	if stop == nil {
		return utils.NotFoundResponse(c, "stop not found on route")
	}

	trigger, err := h.alertUC.ScheduleAlert(c.Request().Context(), route, stop, req.LeadMinutes)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidScheduleTime):
			return utils.BadRequestResponse(c, "stop has an invalid scheduled time")
		case errors.Is(err, models.ErrNotificationPermissionDenied):
			return utils.ForbiddenResponse(c, "notification permission denied; enable notifications to receive alerts")
		default:
			var schedErr *models.SchedulingError
			if errors.As(err, &schedErr) {
				logger.Error("Alert scheduling failed",
					logger.String("route_id", req.RouteID),
					logger.Err(err))
				return utils.ErrorResponseHandler(c, http.StatusBadGateway, "notification facility unavailable")
			}
			return utils.InternalServerErrorResponse(c, "failed to schedule alert")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Alert scheduled", trigger)
}

func findStop(route *models.Route, stopNumber int) *models.Stop {
	for i := range route.Stops {
		if route.Stops[i].StopNumber == stopNumber {
			return &route.Stops[i]
		}
	}
	return nil
}
