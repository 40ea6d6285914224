package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/database"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
)

// TrackingRepository persists tracking data in Redis
type TrackingRepository struct {
	redis *database.RedisClient
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(redis *database.RedisClient) *TrackingRepository {
	return &TrackingRepository{redis: redis}
}

// StoreLocation writes a party's last known location. A fix older than
// the stored one is discarded so the store stays monotonic even when
// events arrive out of order.
func (r *TrackingRepository) StoreLocation(ctx context.Context, partyID string, fix models.LocationFix) error {
	key := fmt.Sprintf(constants.KeyPartyLocation, partyID)

	stored, err := r.redis.HMGet(ctx, key, constants.FieldTimestamp)
	if err == nil && len(stored) > 0 && stored[0] != "" {
		if ts, parseErr := strconv.ParseInt(stored[0], 10, 64); parseErr == nil && fix.Timestamp < ts {
			return nil
		}
	}

	fields := map[string]interface{}{
		constants.FieldLatitude:  fix.Latitude,
		constants.FieldLongitude: fix.Longitude,
		constants.FieldTimestamp: fix.Timestamp,
	}
	if fix.Heading != nil {
		fields[constants.FieldHeading] = *fix.Heading
	}
	if fix.Speed != nil {
		fields[constants.FieldSpeed] = *fix.Speed
	}
	if fix.Accuracy != nil {
		fields[constants.FieldAccuracy] = *fix.Accuracy
	}

	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}
	if err := r.redis.Expire(ctx, key, constants.PartyLocationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	// Best effort, the hash is authoritative
	if err := r.redis.GeoAdd(ctx, constants.KeyPartyGeo, fix.Longitude, fix.Latitude, partyID); err != nil {
		logger.Warn("Failed to update party geo index",
			logger.String("party_id", partyID),
			logger.Err(err))
	}
	return nil
}

// GetLastLocation returns a party's last known location, nil when the
// party has never reported one.
func (r *TrackingRepository) GetLastLocation(ctx context.Context, partyID string) (*models.LocationFix, error) {
	key := fmt.Sprintf(constants.KeyPartyLocation, partyID)

	values, err := r.redis.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldHeading,
		constants.FieldSpeed,
		constants.FieldAccuracy,
		constants.FieldTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if values[0] == "" || values[1] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt latitude for party %s: %w", partyID, err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt longitude for party %s: %w", partyID, err)
	}

	fix := &models.LocationFix{Latitude: lat, Longitude: lng}
	if values[2] != "" {
		if heading, err := strconv.ParseFloat(values[2], 64); err == nil {
			fix.Heading = &heading
		}
	}
	if values[3] != "" {
		if speed, err := strconv.ParseFloat(values[3], 64); err == nil {
			fix.Speed = &speed
		}
	}
	if values[4] != "" {
		if accuracy, err := strconv.ParseFloat(values[4], 64); err == nil {
			fix.Accuracy = &accuracy
		}
	}
	if values[5] != "" {
		if ts, err := strconv.ParseInt(values[5], 10, 64); err == nil {
			fix.Timestamp = ts
		}
	}
	return fix, nil
}

// FindNearbyParties returns parties within radiusMeters of a point,
// nearest first.
func (r *TrackingRepository) FindNearbyParties(ctx context.Context, point utils.GeoPoint, radiusMeters float64) ([]models.NearbyParty, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyPartyGeo, point.Longitude, point.Latitude, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby parties: %w", err)
	}

	parties := make([]models.NearbyParty, 0, len(locations))
	for _, loc := range locations {
		parties = append(parties, models.NearbyParty{
			PartyID:        loc.Name,
			Latitude:       loc.Latitude,
			Longitude:      loc.Longitude,
			DistanceMeters: loc.Dist,
		})
	}
	return parties, nil
}
