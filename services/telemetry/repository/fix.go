package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/buspulse/buspulse/internal/pkg/constants"
	"github.com/buspulse/buspulse/internal/pkg/database"
	"github.com/buspulse/buspulse/internal/pkg/models"
	"github.com/buspulse/buspulse/services/telemetry"
)

type fixRepo struct {
	redisClient *database.RedisClient
}

// NewFixRepository creates a new fix repository backed by Redis.
func NewFixRepository(redisClient *database.RedisClient) telemetry.FixRepo {
	return &fixRepo{
		redisClient: redisClient,
	}
}

// Upsert replaces the stored fix for a device. All fields go through
// one HSet so a concurrent reader sees either the old record or the
// new one, never a mixture. Last write wins by arrival order; no TTL
// is set, retention is an external concern.
func (r *fixRepo) Upsert(ctx context.Context, fix *models.LocationFix) error {
	fixKey := fmt.Sprintf(constants.KeyDeviceFix, fix.DeviceID)
	fixData := map[string]interface{}{
		constants.FieldDeviceID:   fix.DeviceID,
		constants.FieldLatitude:   strconv.FormatFloat(fix.Latitude, 'f', -1, 64),
		constants.FieldLongitude:  strconv.FormatFloat(fix.Longitude, 'f', -1, 64),
		constants.FieldFixTime:    strconv.FormatInt(fix.FixTime, 10),
		constants.FieldReceivedAt: strconv.FormatInt(fix.ReceivedAt.UnixMilli(), 10),
	}

	if err := r.redisClient.HSet(ctx, fixKey, fixData); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	return nil
}

// Get returns the latest fix for a device or models.ErrFixNotFound.
func (r *fixRepo) Get(ctx context.Context, deviceID string) (*models.LocationFix, error) {
	fixKey := fmt.Sprintf(constants.KeyDeviceFix, deviceID)

	values, err := r.redisClient.HGetAll(ctx, fixKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	if len(values) == 0 {
		return nil, models.ErrFixNotFound
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored longitude: %w", err)
	}

	fixTime, err := strconv.ParseInt(values[constants.FieldFixTime], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored fixtime: %w", err)
	}

	receivedAt, err := strconv.ParseInt(values[constants.FieldReceivedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored received_at: %w", err)
	}

	return &models.LocationFix{
		DeviceID:   deviceID,
		Latitude:   lat,
		Longitude:  lng,
		FixTime:    fixTime,
		ReceivedAt: time.UnixMilli(receivedAt).UTC(),
	}, nil
}
