package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buspulse/buspulse/internal/pkg/models"
	alertmocks "github.com/buspulse/buspulse/services/alerts/mocks"
	"github.com/buspulse/buspulse/services/routes"
	routemocks "github.com/buspulse/buspulse/services/routes/mocks"
)

func setupHandler(t *testing.T) (*AlertHandler, *alertmocks.MockAlertUC, *routemocks.MockRouteUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAlertUC := alertmocks.NewMockAlertUC(ctrl)
	mockRouteUC := routemocks.NewMockRouteUC(ctrl)
	return NewAlertHandler(mockAlertUC, mockRouteUC), mockAlertUC, mockRouteUC
}

func doCreateAlert(h *AlertHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/alerts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h.CreateAlert(c)
	return rec
}

func routeWithStops() *models.Route {
	return &models.Route{
		ID:   "route-1",
		Name: "Route 7 North",
		Stops: []models.Stop{
			{RouteID: "route-1", StopNumber: 1, Location: "Depot", Time: "07:00"},
			{RouteID: "route-1", StopNumber: 3, Location: "Maple St & 5th Ave", Time: "07:45"},
		},
	}
}

func TestCreateAlert_Success(t *testing.T) {
	h, mockAlertUC, mockRouteUC := setupHandler(t)

	route := routeWithStops()
	mockRouteUC.EXPECT().GetRoute(gomock.Any(), "route-1").Return(route, nil)
	mockAlertUC.EXPECT().ScheduleAlert(gomock.Any(), route, &route.Stops[1], 10).
		Return(&models.RecurringTrigger{
			ID:      "a8098c1a-f86e-11da-bd1a-00112444be1e",
			Hour:    7,
			Minute:  35,
			Message: "Your bus for Route 7 North will arrive at Maple St & 5th Ave in 10 minutes.",
		}, nil)

	rec := doCreateAlert(h, `{"route_id":"route-1","stop_number":3,"lead_minutes":10}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "a8098c1a-f86e-11da-bd1a-00112444be1e")
	assert.Contains(t, rec.Body.String(), "Maple St")
}

func TestCreateAlert_LeadMinutesOutOfRange(t *testing.T) {
	h, _, _ := setupHandler(t)

	for _, lead := range []string{"0", "31", "-5"} {
		rec := doCreateAlert(h, `{"route_id":"route-1","stop_number":3,"lead_minutes":`+lead+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "lead_minutes %s", lead)
	}
}

func TestCreateAlert_MissingRouteID(t *testing.T) {
	h, _, _ := setupHandler(t)

	rec := doCreateAlert(h, `{"stop_number":3,"lead_minutes":10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAlert_RouteNotFound(t *testing.T) {
	h, _, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().GetRoute(gomock.Any(), "ghost").
		Return(nil, routes.ErrRouteNotFound)

	rec := doCreateAlert(h, `{"route_id":"ghost","stop_number":3,"lead_minutes":10}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAlert_StopNotFound(t *testing.T) {
	h, _, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().GetRoute(gomock.Any(), "route-1").Return(routeWithStops(), nil)

	rec := doCreateAlert(h, `{"route_id":"route-1","stop_number":99,"lead_minutes":10}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAlert_PermissionDenied(t *testing.T) {
	h, mockAlertUC, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().GetRoute(gomock.Any(), "route-1").Return(routeWithStops(), nil)
	mockAlertUC.EXPECT().ScheduleAlert(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(nil, models.ErrNotificationPermissionDenied)

	rec := doCreateAlert(h, `{"route_id":"route-1","stop_number":3,"lead_minutes":10}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "enable notifications")
}

func TestCreateAlert_FacilityUnavailable(t *testing.T) {
	h, mockAlertUC, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().GetRoute(gomock.Any(), "route-1").Return(routeWithStops(), nil)
	mockAlertUC.EXPECT().ScheduleAlert(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(nil, &models.SchedulingError{Reason: "trigger registration failed", Err: errors.New("nats: timeout")})

	rec := doCreateAlert(h, `{"route_id":"route-1","stop_number":3,"lead_minutes":10}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreateAlert_InvalidStopTime(t *testing.T) {
	h, mockAlertUC, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().GetRoute(gomock.Any(), "route-1").Return(routeWithStops(), nil)
	mockAlertUC.EXPECT().ScheduleAlert(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(nil, models.ErrInvalidScheduleTime)

	rec := doCreateAlert(h, `{"route_id":"route-1","stop_number":3,"lead_minutes":10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid scheduled time")
}
