package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/internal/utils"
	"github.com/buspulse/buspulse/services/telemetry"
)

// TelemetryHandler handles HTTP requests for telemetry operations
type TelemetryHandler struct {
	telemetryUC telemetry.TelemetryUC
}

// NewTelemetryHandler creates a new telemetry HTTP handler
func NewTelemetryHandler(telemetryUC telemetry.TelemetryUC) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryUC: telemetryUC,
	}
}

// HandleWebhook ingests one fix from a tracking device. The response
// bodies are part of the device wire contract and are kept verbatim:
// 200 {"message": ...}, 400/500 {"error": ...}.
func (h *TelemetryHandler) HandleWebhook(c echo.Context) error {
	params := map[string]string{
		"id":        c.QueryParam("id"),
		"latitude":  c.QueryParam("latitude"),
		"longitude": c.QueryParam("longitude"),
		"fixtime":   c.QueryParam("fixtime"),
	}

	logger.Info("Received telemetry webhook",
		logger.String("device_id", params["id"]),
		logger.String("latitude", params["latitude"]),
		logger.String("longitude", params["longitude"]),
		logger.String("fixtime", params["fixtime"]))

	fix, err := h.telemetryUC.IngestFix(c.Request().Context(), params)
	if err != nil {
		var invalid *models.InvalidFixError
		if errors.As(err, &invalid) {
			logger.Warn("Rejected telemetry webhook",
				logger.String("device_id", params["id"]),
				logger.Err(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		logger.Error("Failed to process telemetry webhook",
			logger.String("device_id", params["id"]),
			logger.Err(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	logger.Info("Stored telemetry fix",
		logger.String("device_id", fix.DeviceID),
		logger.Time("received_at", fix.ReceivedAt))

	return c.JSON(http.StatusOK, echo.Map{"message": "Data received and processed"})
}

// GetLastFix serves the read API used by freshness monitors.
func (h *TelemetryHandler) GetLastFix(c echo.Context) error {
	deviceID := c.Param("deviceID")
	if deviceID == "" {
		return utils.BadRequestResponse(c, "device_id is required")
	}

	fix, err := h.telemetryUC.GetLastFix(c.Request().Context(), deviceID)
	if err != nil {
		if errors.Is(err, models.ErrFixNotFound) {
			return utils.NotFoundResponse(c, "no fix recorded for device")
		}
		logger.Error("Failed to get last fix",
			logger.String("device_id", deviceID),
			logger.Err(err))
		return utils.ServiceUnavailableResponse(c, "fix store unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fix retrieved", fix)
}
