package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
	"github.com/angkutin/tracking/services/tracking"
	"github.com/angkutin/tracking/services/tracking/usecase"
)

// TrackingHandler handles HTTP requests for trip tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// SelectTrip starts tracking a trip
func (h *TrackingHandler) SelectTrip(c echo.Context) error {
	var trip models.Trip
	if err := c.Bind(&trip); err != nil {
		logger.Error("Failed to bind trip", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if trip.ID == "" {
		return utils.BadRequestResponse(c, "trip id is required")
	}

	trackedPartyID, err := h.trackingUC.SelectTrip(c.Request().Context(), &trip)
	if err != nil {
		logger.Error("Failed to select trip",
			logger.String("trip_id", trip.ID),
			logger.ErrorField(err))
		if err == usecase.ErrNoTrackedParty {
			return utils.BadRequestResponse(c, "trip has no trackable party")
		}
		return utils.InternalServerErrorResponse(c, "failed to select trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip tracking started", map[string]string{
		"trip_id":          trip.ID,
		"tracked_party_id": trackedPartyID,
	})
}

// ClearTrip stops tracking a trip
func (h *TrackingHandler) ClearTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	if err := h.trackingUC.ClearTrip(c.Request().Context(), tripID); err != nil {
		if err == usecase.ErrTripNotFound {
			return utils.NotFoundResponse(c, "trip is not being tracked")
		}
		logger.Error("Failed to clear trip",
			logger.String("trip_id", tripID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to clear trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip tracking stopped", map[string]string{"trip_id": tripID})
}

// GetTripState returns the latest renderable state for a trip
func (h *TrackingHandler) GetTripState(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	state, err := h.trackingUC.CurrentState(c.Request().Context(), tripID)
	if err != nil {
		return utils.NotFoundResponse(c, "no tracking state for trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking state retrieved", state)
}

// GetTripRoute returns the active route for a trip
func (h *TrackingHandler) GetTripRoute(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	route, err := h.trackingUC.ActiveRoute(c.Request().Context(), tripID)
	if err != nil {
		return utils.NotFoundResponse(c, "trip is not being tracked")
	}
	if route == nil {
		return utils.NotFoundResponse(c, "no route computed yet")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved", route)
}

// IngestFix accepts a location fix posted by a party's device
func (h *TrackingHandler) IngestFix(c echo.Context) error {
	partyID := c.Param("id")
	if partyID == "" {
		return utils.BadRequestResponse(c, "party_id is required")
	}

	var fix models.LocationFix
	if err := c.Bind(&fix); err != nil {
		logger.Error("Failed to bind location fix", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.trackingUC.IngestFix(c.Request().Context(), partyID, fix, models.FixSourceSelf); err != nil {
		logger.Error("Failed to ingest location fix",
			logger.String("party_id", partyID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to ingest fix")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Fix accepted", nil)
}

// GetPartyLocation returns a party's last known location
func (h *TrackingHandler) GetPartyLocation(c echo.Context) error {
	partyID := c.Param("id")
	if partyID == "" {
		return utils.BadRequestResponse(c, "party_id is required")
	}

	fix, err := h.trackingUC.LastKnownLocation(c.Request().Context(), partyID)
	if err != nil {
		logger.Error("Failed to get party location",
			logger.String("party_id", partyID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get location")
	}
	if fix == nil {
		return utils.NotFoundResponse(c, "party location not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Party location retrieved", fix)
}

// FindNearbyParties finds parties near a location
func (h *TrackingHandler) FindNearbyParties(c echo.Context) error {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	radiusStr := c.QueryParam("radius")

	if latStr == "" || lngStr == "" || radiusStr == "" {
		return utils.BadRequestResponse(c, "lat, lng, and radius are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid radius")
	}

	parties, err := h.trackingUC.NearbyParties(c.Request().Context(), utils.GeoPoint{Latitude: lat, Longitude: lng}, radius)
	if err != nil {
		logger.Error("Failed to find nearby parties", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to find parties")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby parties found", parties)
}
