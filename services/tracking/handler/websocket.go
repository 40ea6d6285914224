package handler

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	wspkg "github.com/angkutin/tracking/internal/pkg/websocket"
	"github.com/angkutin/tracking/services/tracking"
)

// WebSocketHandler handles WebSocket connections for realtime tracking
type WebSocketHandler struct {
	manager    *wspkg.Manager
	trackingUC tracking.TrackingUC
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager, trackingUC tracking.TrackingUC) *WebSocketHandler {
	return &WebSocketHandler{
		manager:    manager,
		trackingUC: trackingUC,
	}
}

// HandleWebSocket upgrades the connection and processes tracking events
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			logger.Info("WebSocket client disconnected",
				logger.String("user_id", client.UserID))
			return nil
		}

		var message models.WSMessage
		if err := json.Unmarshal(msg, &message); err != nil {
			h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "invalid message format")
			continue
		}

		h.dispatchEvent(client, message)
	}
}

func (h *WebSocketHandler) dispatchEvent(client *models.WebSocketClient, message models.WSMessage) {
	switch message.Event {
	case constants.EventPing:
		h.manager.SendMessage(client.Conn, constants.EventPong, nil)

	case constants.EventJoinRoom:
		h.handleJoinRoom(client, message.Data)

	case constants.EventLeaveRoom:
		h.handleLeaveRoom(client, message.Data)

	case constants.EventLocationUpdate:
		h.handleLocationUpdate(client, message.Data)

	default:
		h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "unknown event: "+message.Event)
	}
}

func (h *WebSocketHandler) handleJoinRoom(client *models.WebSocketClient, data json.RawMessage) {
	var req models.RoomJoinRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TrackedPartyID == "" {
		h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "tracked_party_id is required")
		return
	}

	h.manager.JoinRoom(req.TrackedPartyID, client)
	h.manager.SendMessage(client.Conn, constants.EventRoomJoined, map[string]string{
		"tracked_party_id": req.TrackedPartyID,
		"trip_id":          req.TripID,
	})

	logger.Info("Client joined tracking room",
		logger.String("user_id", client.UserID),
		logger.String("tracked_party_id", req.TrackedPartyID))
}

func (h *WebSocketHandler) handleLeaveRoom(client *models.WebSocketClient, data json.RawMessage) {
	var req models.RoomJoinRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TrackedPartyID == "" {
		h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed, "tracked_party_id is required")
		return
	}

	h.manager.LeaveRoom(req.TrackedPartyID, client.UserID)
}

// handleLocationUpdate ingests a fix sent by the connected party's own
// device. Validation failures are dropped upstream, not errored back,
// so a flaky GPS cannot spam the client with error frames.
func (h *WebSocketHandler) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidLocation, "invalid location payload")
		return
	}

	if err := h.trackingUC.IngestFix(context.Background(), client.UserID, update.Fix(), models.FixSourceSelf); err != nil {
		logger.Warn("Failed to ingest websocket fix",
			logger.String("user_id", client.UserID),
			logger.Err(err))
	}
}
