package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/routes"
	"github.com/buspulse/buspulse/services/routes/mocks"
)

func setupHandler(t *testing.T) (*RouteHandler, *mocks.MockRouteUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRouteUC := mocks.NewMockRouteUC(ctrl)
	return NewRouteHandler(mockRouteUC), mockRouteUC
}

func doGet(handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(c)
	return rec
}

func TestListRoutes_Success(t *testing.T) {
	h, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().ListRoutes(gomock.Any(), "school-1").Return([]models.Route{
		{ID: "route-1", SchoolID: "school-1", Name: "Route A"},
	}, nil)

	rec := doGet(h.ListRoutes, "/v1/routes?school_id=school-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route A")
}

func TestListRoutes_RequiresSchoolID(t *testing.T) {
	h, _ := setupHandler(t)

	rec := doGet(h.ListRoutes, "/v1/routes")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRoute_NotFound(t *testing.T) {
	h, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().GetRoute(gomock.Any(), "ghost").
		Return(nil, routes.ErrRouteNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	h.GetRoute(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNearestStop_Success(t *testing.T) {
	h, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().NearestStop(gomock.Any(), "school-1", 42.85, -71.52).
		Return(&models.NearestStopResult{
			RouteID:    "route-1",
			Stop:       models.Stop{StopNumber: 2, Location: "Elm St & Oak Dr"},
			DistanceKm: 0.05,
		}, nil)

	rec := doGet(h.NearestStop, "/v1/stops/nearest?school_id=school-1&lat=42.85&lng=-71.52")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Elm St")
}

func TestNearestStop_MissingParams(t *testing.T) {
	h, _ := setupHandler(t)

	targets := []string{
		"/v1/stops/nearest",
		"/v1/stops/nearest?school_id=school-1",
		"/v1/stops/nearest?school_id=school-1&lat=42.85",
		"/v1/stops/nearest?lat=42.85&lng=-71.52",
	}
	for _, target := range targets {
		rec := doGet(h.NearestStop, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestNearestStop_InvalidCoordinates(t *testing.T) {
	h, _ := setupHandler(t)

	rec := doGet(h.NearestStop, "/v1/stops/nearest?school_id=school-1&lat=north&lng=-71.52")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(h.NearestStop, "/v1/stops/nearest?school_id=school-1&lat=42.85&lng=west")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearestStop_NoStops(t *testing.T) {
	h, mockRouteUC := setupHandler(t)

	mockRouteUC.EXPECT().NearestStop(gomock.Any(), "school-1", 42.85, -71.52).
		Return(nil, routes.ErrNoStops)

	rec := doGet(h.NearestStop, "/v1/stops/nearest?school_id=school-1&lat=42.85&lng=-71.52")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNearestStop_StorageFailure(t *testing.T) {
	h, mockRouteUC := setupHandler(t)

	// A failing repository must surface as a server error, not an
	// empty result.
	mockRouteUC.EXPECT().NearestStop(gomock.Any(), "school-1", 42.85, -71.52).
		Return(nil, models.ErrStorageUnavailable)

	rec := doGet(h.NearestStop, "/v1/stops/nearest?school_id=school-1&lat=42.85&lng=-71.52")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
