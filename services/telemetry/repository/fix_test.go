package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buspulse/buspulse/internal/pkg/constants"
	"github.com/buspulse/buspulse/internal/pkg/database"
	"github.com/buspulse/buspulse/internal/pkg/models"
)

// setupMiniredis creates a miniredis server and a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func testFix(receivedAt time.Time) *models.LocationFix {
	return &models.LocationFix{
		DeviceID:   "bus1",
		Latitude:   42.85,
		Longitude:  -71.52,
		FixTime:    1700000000000,
		ReceivedAt: receivedAt,
	}
}

func TestUpsertAndGet(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewFixRepository(&database.RedisClient{Client: client})

	ctx := context.Background()
	receivedAt := time.Now().UTC().Truncate(time.Millisecond)
	fix := testFix(receivedAt)

	err := repo.Upsert(ctx, fix)
	require.NoError(t, err)

	fixKey := fmt.Sprintf(constants.KeyDeviceFix, "bus1")
	assert.True(t, mr.Exists(fixKey))

	got, err := repo.Get(ctx, "bus1")
	require.NoError(t, err)
	assert.Equal(t, "bus1", got.DeviceID)
	assert.Equal(t, 42.85, got.Latitude)
	assert.Equal(t, -71.52, got.Longitude)
	assert.Equal(t, int64(1700000000000), got.FixTime)
	assert.True(t, got.ReceivedAt.Equal(receivedAt))
}

func TestUpsert_Idempotent(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewFixRepository(&database.RedisClient{Client: client})

	ctx := context.Background()
	fix := testFix(time.Now().UTC().Truncate(time.Millisecond))

	require.NoError(t, repo.Upsert(ctx, fix))
	first, err := repo.Get(ctx, "bus1")
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, fix))
	second, err := repo.Get(ctx, "bus1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpsert_LastWriteWins(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewFixRepository(&database.RedisClient{Client: client})

	ctx := context.Background()

	first := testFix(time.Now().UTC().Truncate(time.Millisecond))
	require.NoError(t, repo.Upsert(ctx, first))

	// The second write carries an older device timestamp but arrives
	// later, so it still replaces the record: arrival order wins, not
	// fixtime order.
	second := &models.LocationFix{
		DeviceID:   "bus1",
		Latitude:   42.86,
		Longitude:  -71.53,
		FixTime:    1600000000000,
		ReceivedAt: first.ReceivedAt.Add(5 * time.Second),
	}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx, "bus1")
	require.NoError(t, err)
	assert.Equal(t, 42.86, got.Latitude)
	assert.Equal(t, -71.53, got.Longitude)
	assert.Equal(t, int64(1600000000000), got.FixTime)
}

func TestUpsert_IndependentDevices(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewFixRepository(&database.RedisClient{Client: client})

	ctx := context.Background()
	receivedAt := time.Now().UTC().Truncate(time.Millisecond)

	fix1 := testFix(receivedAt)
	fix2 := &models.LocationFix{
		DeviceID:   "bus2",
		Latitude:   1.0,
		Longitude:  2.0,
		FixTime:    42,
		ReceivedAt: receivedAt,
	}

	require.NoError(t, repo.Upsert(ctx, fix1))
	require.NoError(t, repo.Upsert(ctx, fix2))

	got1, err := repo.Get(ctx, "bus1")
	require.NoError(t, err)
	got2, err := repo.Get(ctx, "bus2")
	require.NoError(t, err)

	assert.Equal(t, 42.85, got1.Latitude)
	assert.Equal(t, 1.0, got2.Latitude)
}

func TestGet_NotFound(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewFixRepository(&database.RedisClient{Client: client})

	got, err := repo.Get(context.Background(), "ghost")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrFixNotFound)
}

func TestUpsert_StorageUnavailable(t *testing.T) {
	mr, client := setupMiniredis(t)

	repo := NewFixRepository(&database.RedisClient{Client: client})

	// Force Redis to fail by closing the server
	mr.Close()

	err := repo.Upsert(context.Background(), testFix(time.Now()))

	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}
