package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/routes"
	"github.com/buspulse/buspulse/services/routes/mocks"
)

func sampleRoutes() []models.Route {
	return []models.Route{
		{
			ID:       "route-1",
			SchoolID: "school-1",
			Name:     "Route A",
			DeviceID: "bus1",
			Stops: []models.Stop{
				{RouteID: "route-1", StopNumber: 1, Location: "Main St & 1st Ave", Latitude: 42.8500, Longitude: -71.5200, Time: "07:15"},
				{RouteID: "route-1", StopNumber: 2, Location: "Elm St & Oak Dr", Latitude: 42.8600, Longitude: -71.5300, Time: "07:22"},
			},
		},
		{
			ID:       "route-2",
			SchoolID: "school-1",
			Name:     "Route B",
			Stops: []models.Stop{
				{RouteID: "route-2", StopNumber: 1, Location: "Pine Rd", Latitude: 42.9000, Longitude: -71.6000, Time: "07:05"},
			},
		},
	}
}

func TestListRoutes_RequiresSchoolID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl))

	result, err := uc.ListRoutes(context.Background(), "")

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestNearestStop_PicksClosest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRouteRepo(ctrl)
	mockRepo.EXPECT().ListRoutes(gomock.Any(), "school-1").Return(sampleRoutes(), nil)

	uc := NewRouteUC(mockRepo)

	// A tap right next to the second stop of route-1
	result, err := uc.NearestStop(context.Background(), "school-1", 42.8601, -71.5301)

	require.NoError(t, err)
	assert.Equal(t, "route-1", result.RouteID)
	assert.Equal(t, 2, result.Stop.StopNumber)
	assert.Less(t, result.DistanceKm, 0.1)
}

func TestNearestStop_FarTapFallsBackToFullScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRouteRepo(ctrl)
	mockRepo.EXPECT().ListRoutes(gomock.Any(), "school-1").Return(sampleRoutes(), nil)

	uc := NewRouteUC(mockRepo)

	// Far outside every geohash cell of the stops; the full scan must
	// still resolve the closest one.
	result, err := uc.NearestStop(context.Background(), "school-1", 43.5, -72.5)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "route-2", result.RouteID)
}

func TestNearestStop_NoStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRouteRepo(ctrl)
	mockRepo.EXPECT().ListRoutes(gomock.Any(), "school-1").Return([]models.Route{}, nil)

	uc := NewRouteUC(mockRepo)

	result, err := uc.NearestStop(context.Background(), "school-1", 42.85, -71.52)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, routes.ErrNoStops)
}
