package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/database"
	"github.com/angkutin/tracking/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*TrackingRepository, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	return NewTrackingRepository(database.NewRedisClientFromExisting(db)), mock
}

func TestStoreLocation_DiscardsStaleFix(t *testing.T) {
	repo, mock := newMockRepo(t)
	key := fmt.Sprintf(constants.KeyPartyLocation, "7")

	// Stored fix is newer than the incoming one; nothing is written
	mock.ExpectHMGet(key, constants.FieldTimestamp).SetVal([]interface{}{"2000"})

	err := repo.StoreLocation(context.Background(), "7", models.LocationFix{
		Latitude:  -6.2100,
		Longitude: 106.8300,
		Timestamp: 1000,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastLocation(t *testing.T) {
	repo, mock := newMockRepo(t)
	key := fmt.Sprintf(constants.KeyPartyLocation, "7")
	fields := []string{
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldHeading,
		constants.FieldSpeed,
		constants.FieldAccuracy,
		constants.FieldTimestamp,
	}

	t.Run("returns stored fix", func(t *testing.T) {
		mock.ExpectHMGet(key, fields...).SetVal([]interface{}{
			"-6.21", "106.83", "90.5", nil, "12.0", "1700000000000",
		})

		fix, err := repo.GetLastLocation(context.Background(), "7")

		require.NoError(t, err)
		require.NotNil(t, fix)
		assert.Equal(t, -6.21, fix.Latitude)
		assert.Equal(t, 106.83, fix.Longitude)
		require.NotNil(t, fix.Heading)
		assert.Equal(t, 90.5, *fix.Heading)
		assert.Nil(t, fix.Speed)
		assert.Equal(t, int64(1700000000000), fix.Timestamp)
	})

	t.Run("unknown party returns nil", func(t *testing.T) {
		mock.ExpectHMGet(key, fields...).SetVal([]interface{}{nil, nil, nil, nil, nil, nil})

		fix, err := repo.GetLastLocation(context.Background(), "7")

		require.NoError(t, err)
		assert.Nil(t, fix)
	})
}

func TestRouteCache(t *testing.T) {
	route := &models.RouteInfo{
		DistanceMeters:  15000,
		DurationSeconds: 1200,
		Coordinates: []models.Coordinate{
			{Latitude: -6.2100, Longitude: 106.8300},
			{Latitude: -6.1754, Longitude: 106.8272},
		},
	}
	key := fmt.Sprintf(constants.KeyTripRoute, "trip-1", "-6.2100,106.8300")

	t.Run("store and retrieve", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		data, err := json.Marshal(route)
		require.NoError(t, err)

		mock.ExpectSet(key, data, constants.RouteCacheTTL).SetVal("OK")
		mock.ExpectGet(key).SetVal(string(data))

		require.NoError(t, repo.StoreRoute(context.Background(), "trip-1", "-6.2100,106.8300", route))

		got, err := repo.GetRoute(context.Background(), "trip-1", "-6.2100,106.8300")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, route.DistanceMeters, got.DistanceMeters)
		assert.Len(t, got.Coordinates, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fallback route is not cached", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		fallback := &models.RouteInfo{DistanceMeters: 5000, Fallback: true}

		require.NoError(t, repo.StoreRoute(context.Background(), "trip-1", "-6.2100,106.8300", fallback))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectGet(key).RedisNil()

		got, err := repo.GetRoute(context.Background(), "trip-1", "-6.2100,106.8300")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt entry is evicted and treated as miss", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectGet(key).SetVal("{not json")
		mock.ExpectDel(key).SetVal(1)

		got, err := repo.GetRoute(context.Background(), "trip-1", "-6.2100,106.8300")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEvictTripRoutes(t *testing.T) {
	repo, mock := newMockRepo(t)
	pattern := fmt.Sprintf(constants.KeyTripRouteScan, "trip-1")
	keys := []string{
		fmt.Sprintf(constants.KeyTripRoute, "trip-1", "-6.2100,106.8300"),
		fmt.Sprintf(constants.KeyTripRoute, "trip-1", "-6.2105,106.8311"),
	}

	mock.ExpectScan(0, pattern, 100).SetVal(keys, 0)
	mock.ExpectDel(keys...).SetVal(2)

	err := repo.EvictTripRoutes(context.Background(), "trip-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
