package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	natspkg "github.com/angkutin/tracking/internal/pkg/nats"
	wspkg "github.com/angkutin/tracking/internal/pkg/websocket"
	"github.com/angkutin/tracking/services/tracking"
)

// NATSHandler consumes tracking events from the message broker and
// bridges them to the use case and the WebSocket rooms.
type NATSHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	wsManager  *wspkg.Manager
	subs       []*nats.Subscription
}

// NewNATSHandler creates a new tracking NATS handler
func NewNATSHandler(trackingUC tracking.TrackingUC, client *natspkg.Client, wsManager *wspkg.Manager) *NATSHandler {
	return &NATSHandler{
		trackingUC: trackingUC,
		natsClient: client,
		wsManager:  wsManager,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to all tracking subjects and registers
// the reconnect hook that replays room joins.
func (h *NATSHandler) InitNATSConsumers() error {
	subjects := map[string]nats.MsgHandler{
		constants.SubjectLocationUpdate: h.handleLocationUpdate,
		constants.SubjectTrackingState:  h.handleTrackingState,
		constants.SubjectArrival:        h.handleArrival,
		constants.SubjectRoomJoin:       h.handleRoomJoin,
		constants.SubjectRoomLeave:      h.handleRoomLeave,
	}

	for subject, msgHandler := range subjects {
		sub, err := h.natsClient.Subscribe(subject, msgHandler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	h.natsClient.OnReconnect(func() {
		logger.Info("Broker reconnected, replaying room joins")
		h.trackingUC.ReplayRoomJoins(context.Background())
	})

	logger.Info("Tracking NATS consumers initialized")
	return nil
}

// handleLocationUpdate ingests a fix published by another party's device
func (h *NATSHandler) handleLocationUpdate(msg *nats.Msg) {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		logger.Error("Failed to unmarshal location update", logger.Err(err))
		return
	}

	if err := h.trackingUC.IngestFix(context.Background(), update.UserID, update.Fix(), models.FixSourceRemote); err != nil {
		logger.Error("Failed to ingest remote location update",
			logger.String("party_id", update.UserID),
			logger.Err(err))
	}
}

// handleTrackingState fans the renderable state out to the tracked
// party's room.
func (h *NATSHandler) handleTrackingState(msg *nats.Msg) {
	var state models.TrackingState
	if err := json.Unmarshal(msg.Data, &state); err != nil {
		logger.Error("Failed to unmarshal tracking state", logger.Err(err))
		return
	}

	h.wsManager.BroadcastToRoom(state.TrackedPartyID, constants.EventTrackingState, state)
}

// handleArrival fans a one-shot arrival event out to the room
func (h *NATSHandler) handleArrival(msg *nats.Msg) {
	var event models.ArrivalEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal arrival event", logger.Err(err))
		return
	}

	wsEvent := constants.EventArrivalPickup
	if event.Kind == models.ArrivalDropoff {
		wsEvent = constants.EventArrivalDropoff
	}
	h.wsManager.BroadcastToRoom(event.TrackedPartyID, wsEvent, event)
}

// handleRoomJoin subscribes a connected requester to the tracked
// party's room. Requesters without a live connection are joined when
// they connect and send their own join event.
func (h *NATSHandler) handleRoomJoin(msg *nats.Msg) {
	var req models.RoomJoinRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		logger.Error("Failed to unmarshal room join request", logger.Err(err))
		return
	}

	client, connected := h.wsManager.GetClient(req.RequesterID)
	if !connected {
		logger.Debug("Room join requester not connected",
			logger.String("requester_id", req.RequesterID),
			logger.String("tracked_party_id", req.TrackedPartyID))
		return
	}

	h.wsManager.JoinRoom(req.TrackedPartyID, client)
	h.wsManager.NotifyClient(req.RequesterID, constants.EventRoomJoined, map[string]string{
		"tracked_party_id": req.TrackedPartyID,
		"trip_id":          req.TripID,
	})
}

// handleRoomLeave removes the requester from the tracked party's room
// when the trip stops being tracked. Removing an unknown member is a
// no-op in the manager.
func (h *NATSHandler) handleRoomLeave(msg *nats.Msg) {
	var req models.RoomJoinRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		logger.Error("Failed to unmarshal room leave request", logger.Err(err))
		return
	}

	h.wsManager.LeaveRoom(req.TrackedPartyID, req.RequesterID)
}

// Close drains all subscriptions
func (h *NATSHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
}
