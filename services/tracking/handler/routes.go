package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/angkutin/tracking/internal/pkg/middleware"
	"github.com/angkutin/tracking/internal/pkg/models"
	natspkg "github.com/angkutin/tracking/internal/pkg/nats"
	wspkg "github.com/angkutin/tracking/internal/pkg/websocket"
	"github.com/angkutin/tracking/services/tracking"
	httpHandler "github.com/angkutin/tracking/services/tracking/handler/http"
)

// TrackingHandler combines all transport handlers for the tracking service
type TrackingHandler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingWS   *WebSocketHandler
	trackingNATS *NATSHandler
	cfg          *models.Config
}

// NewTrackingHandler creates the combined handler
func NewTrackingHandler(
	trackingUC tracking.TrackingUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *TrackingHandler {
	return &TrackingHandler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		trackingWS:   NewWebSocketHandler(wsManager, trackingUC),
		trackingNATS: NewNATSHandler(trackingUC, natsClient, wsManager),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *TrackingHandler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())

	// Realtime channel for parties and observers
	e.GET("/ws", h.trackingWS.HandleWebSocket)

	// Authenticated client routes
	api := e.Group("/v1", middleware.JWTAuth(h.cfg.JWT))
	api.GET("/trips/:id/state", h.trackingHTTP.GetTripState)
	api.GET("/trips/:id/route", h.trackingHTTP.GetTripRoute)
	api.GET("/parties/:id/location", h.trackingHTTP.GetPartyLocation)

	// Internal routes for service-to-service communication
	internal := e.Group("/internal", middleware.APIKey(h.cfg.Server.APIKey))
	internal.POST("/trips", h.trackingHTTP.SelectTrip)
	internal.DELETE("/trips/:id", h.trackingHTTP.ClearTrip)
	internal.GET("/trips/:id/state", h.trackingHTTP.GetTripState)
	internal.GET("/trips/:id/route", h.trackingHTTP.GetTripRoute)
	internal.POST("/parties/:id/location", h.trackingHTTP.IngestFix)
	internal.GET("/parties/:id/location", h.trackingHTTP.GetPartyLocation)
	internal.GET("/parties/nearby", h.trackingHTTP.FindNearbyParties)
}

// InitNATSConsumers initializes all NATS consumers
func (h *TrackingHandler) InitNATSConsumers() error {
	return h.trackingNATS.InitNATSConsumers()
}

// Close drains broker subscriptions
func (h *TrackingHandler) Close() {
	h.trackingNATS.Close()
}
