package tracking

import (
	"context"

	"github.com/angkutin/tracking/internal/pkg/models"
)

// TrackingGW defines the interface for outbound tracking events
type TrackingGW interface {
	PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error
	PublishRoomJoin(ctx context.Context, req models.RoomJoinRequest) error
	PublishRoomLeave(ctx context.Context, req models.RoomJoinRequest) error
	PublishArrival(ctx context.Context, event models.ArrivalEvent) error
	PublishTrackingState(ctx context.Context, state models.TrackingState) error
}

// RouteProvider computes a road-network route between two points with
// optional intermediate waypoints.
type RouteProvider interface {
	GetRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResponse, error)
}
