package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/models"
	natspkg "github.com/angkutin/tracking/internal/pkg/nats"
)

// NATSGateway publishes tracking events to the message broker
type NATSGateway struct {
	nats *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{nats: client}
}

func (g *NATSGateway) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}
	if err := g.nats.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// PublishLocationUpdate forwards a party's own fix to the realtime channel
func (g *NATSGateway) PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	return g.publish(constants.SubjectLocationUpdate, update)
}

// PublishRoomJoin announces interest in a tracked party's fixes
func (g *NATSGateway) PublishRoomJoin(ctx context.Context, req models.RoomJoinRequest) error {
	return g.publish(constants.SubjectRoomJoin, req)
}

// PublishRoomLeave announces the end of interest in a tracked party,
// mirroring the join issued on trip selection.
func (g *NATSGateway) PublishRoomLeave(ctx context.Context, req models.RoomJoinRequest) error {
	return g.publish(constants.SubjectRoomLeave, req)
}

// PublishArrival emits a one-shot waypoint arrival event
func (g *NATSGateway) PublishArrival(ctx context.Context, event models.ArrivalEvent) error {
	return g.publish(constants.SubjectArrival, event)
}

// PublishTrackingState emits the renderable tracking state
func (g *NATSGateway) PublishTrackingState(ctx context.Context, state models.TrackingState) error {
	return g.publish(constants.SubjectTrackingState, state)
}
