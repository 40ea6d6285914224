package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
)

// StoreRoute caches an optimized route keyed by trip id and origin
// bucket. Fallback routes are never cached so a recovered provider is
// retried on the next fetch.
func (r *TrackingRepository) StoreRoute(ctx context.Context, tripID, originBucket string, route *models.RouteInfo) error {
	if route == nil {
		return fmt.Errorf("cannot cache nil route for trip %s", tripID)
	}
	if route.Fallback {
		return nil
	}

	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to marshal route: %w", err)
	}

	key := fmt.Sprintf(constants.KeyTripRoute, tripID, originBucket)
	if err := r.redis.Set(ctx, key, data, constants.RouteCacheTTL); err != nil {
		return fmt.Errorf("failed to cache route: %w", err)
	}
	return nil
}

// GetRoute returns a cached route, nil on a miss
func (r *TrackingRepository) GetRoute(ctx context.Context, tripID, originBucket string) (*models.RouteInfo, error) {
	key := fmt.Sprintf(constants.KeyTripRoute, tripID, originBucket)

	data, err := r.redis.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached route: %w", err)
	}

	var route models.RouteInfo
	if err := json.Unmarshal([]byte(data), &route); err != nil {
		// A corrupt entry is treated as a miss and evicted
		logger.Warn("Evicting corrupt cached route",
			logger.String("trip_id", tripID),
			logger.String("origin_bucket", originBucket),
			logger.Err(err))
		if delErr := r.redis.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to evict corrupt route", logger.Err(delErr))
		}
		return nil, nil
	}
	return &route, nil
}

// EvictTripRoutes removes every cached route for a trip
func (r *TrackingRepository) EvictTripRoutes(ctx context.Context, tripID string) error {
	pattern := fmt.Sprintf(constants.KeyTripRouteScan, tripID)

	keys, err := r.redis.Scan(ctx, pattern)
	if err != nil {
		return fmt.Errorf("failed to scan trip routes: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.redis.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to evict trip routes: %w", err)
	}
	return nil
}
