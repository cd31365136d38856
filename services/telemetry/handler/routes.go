package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/pkg/middleware"
	"github.com/buspulse/buspulse/internal/pkg/models"
	telemetryhttp "github.com/buspulse/buspulse/services/telemetry/handler/http"
)

// Handler coordinates the protocol handlers for the telemetry service
type Handler struct {
	telemetryHandler *telemetryhttp.TelemetryHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(telemetryHandler *telemetryhttp.TelemetryHandler, cfg *models.Config) *Handler {
	return &Handler{
		telemetryHandler: telemetryHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes wires the telemetry endpoints onto the Echo instance.
// Trackers expect a 404 {"error": "Not Found"} for anything that is
// not the webhook path and verb, so the error handler rewrites Echo's
// default not-found and method-not-allowed responses.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = wireErrorHandler(e)

	e.GET("/telemetry", h.telemetryHandler.HandleWebhook,
		middleware.ValidateAPIKey(h.cfg.Telemetry.APIKey))

	v1 := e.Group("/v1")
	v1.GET("/fixes/:deviceID", h.telemetryHandler.GetLastFix)
}

func wireErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) &&
			(httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed) {
			if !c.Response().Committed {
				_ = c.JSON(http.StatusNotFound, echo.Map{"error": "Not Found"})
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
