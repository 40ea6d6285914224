package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
)

// Manager manages WebSocket connections, client state and rooms. A room
// is keyed by a canonical tracked-party id; every client that joined the
// room receives that party's location traffic.
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	rooms    map[string]map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		rooms:   make(map[string]map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient removes a client and drops its room memberships
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
	for room, members := range m.rooms {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, room)
		}
	}
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// JoinRoom subscribes a connected client to a tracked-party room.
// Idempotent: joining the same room twice is a no-op.
func (m *Manager) JoinRoom(roomID string, client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()

	members, ok := m.rooms[roomID]
	if !ok {
		members = make(map[string]*models.WebSocketClient)
		m.rooms[roomID] = members
	}
	members[client.UserID] = client
}

// LeaveRoom removes a client from a room
func (m *Manager) LeaveRoom(roomID, userID string) {
	m.Lock()
	defer m.Unlock()

	members, ok := m.rooms[roomID]
	if !ok {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(m.rooms, roomID)
	}
}

// RoomSize returns the number of clients in a room
func (m *Manager) RoomSize(roomID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.rooms[roomID])
}

// BroadcastToRoom sends an event to every member of a room
func (m *Manager) BroadcastToRoom(roomID string, event string, data interface{}) {
	m.RLock()
	members := make([]*models.WebSocketClient, 0, len(m.rooms[roomID]))
	for _, client := range m.rooms[roomID] {
		members = append(members, client)
	}
	m.RUnlock()

	for _, client := range members {
		if err := m.SendMessage(client.Conn, event, data); err != nil {
			logger.Warn("Error broadcasting to room member",
				logger.String("room_id", roomID),
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends a notification to a specific client
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client.Conn, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}
