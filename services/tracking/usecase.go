package tracking

import (
	"context"

	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
)

// TrackingUC defines the interface for trip tracking business logic
type TrackingUC interface {
	// Trip lifecycle
	SelectTrip(ctx context.Context, trip *models.Trip) (string, error)
	ClearTrip(ctx context.Context, tripID string) error

	// Location ingestion
	IngestFix(ctx context.Context, partyID string, fix models.LocationFix, source models.FixSource) error

	// Read access for HTTP handlers
	CurrentState(ctx context.Context, tripID string) (*models.TrackingState, error)
	ActiveRoute(ctx context.Context, tripID string) (*models.RouteInfo, error)
	LastKnownLocation(ctx context.Context, partyID string) (*models.LocationFix, error)
	NearbyParties(ctx context.Context, point utils.GeoPoint, radiusMeters float64) ([]models.NearbyParty, error)

	// ReplayRoomJoins re-announces room membership for every active
	// trip. Invoked when the realtime channel reconnects.
	ReplayRoomJoins(ctx context.Context)
}
