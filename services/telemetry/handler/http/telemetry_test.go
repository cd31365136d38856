package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/telemetry/mocks"
)

func TestHandleWebhook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	h := NewTelemetryHandler(mockUC)

	mockUC.EXPECT().
		IngestFix(gomock.Any(), map[string]string{
			"id":        "bus1",
			"latitude":  "42.85",
			"longitude": "-71.52",
			"fixtime":   "1700000000000",
		}).
		Return(&models.LocationFix{
			DeviceID:   "bus1",
			Latitude:   42.85,
			Longitude:  -71.52,
			FixTime:    1700000000000,
			ReceivedAt: time.Now().UTC(),
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/telemetry?id=bus1&latitude=42.85&longitude=-71.52&fixtime=1700000000000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Data received and processed"}`, rec.Body.String())
}

func TestHandleWebhook_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	h := NewTelemetryHandler(mockUC)

	mockUC.EXPECT().
		IngestFix(gomock.Any(), gomock.Any()).
		Return(nil, models.NewMissingFieldError("id"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/telemetry?id=&latitude=42.85&longitude=-71.52&fixtime=123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "id")
}

func TestHandleWebhook_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	h := NewTelemetryHandler(mockUC)

	mockUC.EXPECT().
		IngestFix(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrStorageUnavailable)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/telemetry?id=bus1&latitude=42.85&longitude=-71.52&fixtime=123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestGetLastFix_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	h := NewTelemetryHandler(mockUC)

	receivedAt := time.Now().UTC()
	mockUC.EXPECT().
		GetLastFix(gomock.Any(), "bus1").
		Return(&models.LocationFix{
			DeviceID:   "bus1",
			Latitude:   42.85,
			Longitude:  -71.52,
			FixTime:    1700000000000,
			ReceivedAt: receivedAt,
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/fixes/bus1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("deviceID")
	c.SetParamValues("bus1")

	err := h.GetLastFix(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool               `json:"success"`
		Data    models.LocationFix `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "bus1", body.Data.DeviceID)
	assert.Equal(t, 42.85, body.Data.Latitude)
	assert.Equal(t, -71.52, body.Data.Longitude)
}

func TestGetLastFix_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTelemetryUC(ctrl)
	h := NewTelemetryHandler(mockUC)

	mockUC.EXPECT().
		GetLastFix(gomock.Any(), "ghost").
		Return(nil, models.ErrFixNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/fixes/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("deviceID")
	c.SetParamValues("ghost")

	err := h.GetLastFix(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
