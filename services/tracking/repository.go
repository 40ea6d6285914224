package tracking

import (
	"context"

	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
)

// TrackingRepo defines the interface for tracking data access
type TrackingRepo interface {
	// Last known location per tracked party. Writes are monotonic by
	// fix timestamp.
	StoreLocation(ctx context.Context, partyID string, fix models.LocationFix) error
	GetLastLocation(ctx context.Context, partyID string) (*models.LocationFix, error)

	// FindNearbyParties queries the geo index of last known positions
	FindNearbyParties(ctx context.Context, point utils.GeoPoint, radiusMeters float64) ([]models.NearbyParty, error)

	// Route cache keyed by (trip id, origin bucket)
	StoreRoute(ctx context.Context, tripID, originBucket string, route *models.RouteInfo) error
	GetRoute(ctx context.Context, tripID, originBucket string) (*models.RouteInfo, error)
	EvictTripRoutes(ctx context.Context, tripID string) error
}
