package usecase

import (
	"context"
	"fmt"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
	"github.com/angkutin/tracking/services/tracking"
)

// RouteService acquires route geometry for a trip: provider call,
// polyline decoding, volume control and caching by (trip id, origin
// bucket). A cache hit short-circuits the provider entirely.
type RouteService struct {
	repo     tracking.TrackingRepo
	provider tracking.RouteProvider
	cfg      *models.Config
}

// NewRouteService creates a new route geometry service
func NewRouteService(repo tracking.TrackingRepo, provider tracking.RouteProvider, cfg *models.Config) *RouteService {
	return &RouteService{
		repo:     repo,
		provider: provider,
		cfg:      cfg,
	}
}

// GetRoute returns the route from origin to the trip's next
// destination. Provider failure or a malformed polyline falls back to
// a straight-line distance with a speed-based ETA so the caller's
// distance/ETA are never undefined.
func (s *RouteService) GetRoute(ctx context.Context, trip *models.Trip, origin utils.GeoPoint) (*models.RouteInfo, error) {
	if trip == nil {
		return nil, ErrNoActiveTrip
	}

	destination, waypoints := s.legFor(trip)
	bucket := utils.BucketKey(origin, constants.RouteCacheBucketDecimals)

	if cached, err := s.repo.GetRoute(ctx, trip.ID, bucket); err == nil && cached != nil {
		return cached, nil
	}

	req := models.RouteRequest{
		Origin:      models.Coordinate{Latitude: origin.Latitude, Longitude: origin.Longitude},
		Destination: destination,
		Waypoints:   waypoints,
		Vehicle: models.VehicleProfile{
			Type: s.cfg.RouteProvider.VehicleType,
		},
		Avoid: models.RouteAvoid{
			Tolls:   s.cfg.RouteProvider.AvoidTolls,
			Ferries: s.cfg.RouteProvider.AvoidFerries,
		},
	}

	resp, err := s.provider.GetRoute(ctx, req)
	if err != nil {
		logger.Warn("Route provider failed, falling back to straight line",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
		return s.straightLineFallback(origin, destination), nil
	}

	coords, err := decodeRouteGeometry(resp)
	if err != nil {
		// A corrupted path must not be rendered partially
		logger.Warn("Route geometry decode failed, falling back to straight line",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
		return s.straightLineFallback(origin, destination), nil
	}

	route := &models.RouteInfo{
		DistanceMeters:  resp.DistanceMeters,
		DurationSeconds: resp.DurationSeconds,
		Coordinates:     utils.OptimizeRouteCoordinates(coords),
	}

	if err := s.repo.StoreRoute(ctx, trip.ID, bucket, route); err != nil {
		logger.Warn("Failed to cache route",
			logger.String("trip_id", trip.ID),
			logger.String("bucket", bucket),
			logger.Err(err))
		// Serve the route even when caching fails
	}

	return route, nil
}

// legFor selects the trip's current destination. Before the load is
// picked up the active leg ends at the pickup waypoint, with the
// dropoff carried as an onward waypoint; afterwards it ends at the
// dropoff.
func (s *RouteService) legFor(trip *models.Trip) (models.Coordinate, []models.Coordinate) {
	pickup := models.Coordinate{Latitude: trip.Pickup.Latitude, Longitude: trip.Pickup.Longitude}
	dropoff := models.Coordinate{Latitude: trip.Dropoff.Latitude, Longitude: trip.Dropoff.Longitude}

	if trip.Status.Before(models.TripStatusLoaded) {
		return pickup, []models.Coordinate{dropoff}
	}
	return dropoff, nil
}

// decodeRouteGeometry prefers per-step polylines for fidelity, falling
// back to the overview polyline. Any decode error fails the whole
// geometry.
func decodeRouteGeometry(resp *models.RouteResponse) ([]models.Coordinate, error) {
	var coords []models.Coordinate

	for _, leg := range resp.Legs {
		for _, step := range leg.Steps {
			if step.Polyline == "" {
				continue
			}
			stepCoords, err := utils.DecodePolyline(step.Polyline)
			if err != nil {
				return nil, fmt.Errorf("step polyline: %w", err)
			}
			coords = append(coords, stepCoords...)
		}
	}
	if len(coords) >= 2 {
		return coords, nil
	}

	if resp.Polyline == "" {
		return nil, fmt.Errorf("provider response carries no geometry")
	}
	coords, err := utils.DecodePolyline(resp.Polyline)
	if err != nil {
		return nil, err
	}
	if len(coords) < 2 {
		return nil, fmt.Errorf("decoded polyline has %d coordinates", len(coords))
	}
	return coords, nil
}

// straightLineFallback estimates distance and ETA when no provider
// route is available.
func (s *RouteService) straightLineFallback(origin utils.GeoPoint, destination models.Coordinate) *models.RouteInfo {
	dist := utils.DistanceMeters(origin, utils.GeoPointFromCoordinate(destination))

	speed := s.cfg.Tracking.FallbackSpeedKmh
	if speed <= 0 {
		speed = constants.FallbackSpeedKmh
	}
	etaSeconds := dist / (speed * 1000.0 / 3600.0)

	return &models.RouteInfo{
		DistanceMeters:  dist,
		DurationSeconds: etaSeconds,
		Coordinates: []models.Coordinate{
			{Latitude: origin.Latitude, Longitude: origin.Longitude},
			destination,
		},
		Fallback: true,
	}
}
