package usecase

import (
	"math"
	"strconv"

	"github.com/buspulse/buspulse/internal/pkg/models"
)

// ParseFix turns raw webhook parameters into a typed fix. It fails
// fast on the first violation: id must be present and non-empty,
// latitude and longitude must parse as finite floats, fixtime must
// parse as an integer. Coordinates are deliberately not range-checked;
// the intake is permissive and out-of-range values pass through.
func ParseFix(params map[string]string) (*models.LocationFix, error) {
	deviceID := params["id"]
	if deviceID == "" {
		return nil, models.NewMissingFieldError("id")
	}

	latitude, err := parseFinite(params["latitude"])
	if err != nil {
		return nil, models.NewInvalidFieldError("latitude")
	}

	longitude, err := parseFinite(params["longitude"])
	if err != nil {
		return nil, models.NewInvalidFieldError("longitude")
	}

	fixTime, err := strconv.ParseInt(params["fixtime"], 10, 64)
	if err != nil {
		return nil, models.NewInvalidFieldError("fixtime")
	}

	return &models.LocationFix{
		DeviceID:  deviceID,
		Latitude:  latitude,
		Longitude: longitude,
		FixTime:   fixTime,
	}, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
