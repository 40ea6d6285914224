package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"

	"github.com/angkutin/tracking/internal/pkg/logger"
	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
	"github.com/angkutin/tracking/services/tracking"
)

// Tracker errors
var (
	ErrNoTrackedParty = errors.New("trip has no resolvable tracked party")
	ErrTripNotFound   = errors.New("trip is not being tracked")
)

// geohashPrecision tags outbound fixes with a ~150 m cell
const geohashPrecision = 7

// tripSession is the trip-scoped state owned by the tracker. It is
// replaced wholesale when the active trip id changes; nothing in it
// survives a trip switch.
type tripSession struct {
	trip        *models.Trip
	canonicalID string
	generation  uint64

	cache    *LocationCache
	geofence *GeofenceMonitor

	route          *models.RouteInfo
	routeOrigin    utils.GeoPoint
	hasRouteOrigin bool

	prevFix *models.LocationFix
	state   *models.TrackingState

	joinReq models.RoomJoinRequest

	debounceRoute   func(func())
	debouncePublish func(func())
	lastRouteRun    time.Time
	lastPublishRun  time.Time
	pendingUpdate   *models.LocationUpdate
}

// TrackerUC implements tracking.TrackingUC. One instance owns all
// active trip sessions; per-session state is guarded by the tracker
// mutex and pending work is cancelled logically through the session
// generation counter.
type TrackerUC struct {
	cfg    *models.Config
	repo   tracking.TrackingRepo
	gw     tracking.TrackingGW
	routes *RouteService

	mu         sync.Mutex
	sessions   map[string]*tripSession
	generation uint64
}

// NewTrackerUC creates the tracking use case
func NewTrackerUC(repo tracking.TrackingRepo, gw tracking.TrackingGW, provider tracking.RouteProvider, cfg *models.Config) *TrackerUC {
	return &TrackerUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		routes:   NewRouteService(repo, provider, cfg),
		sessions: make(map[string]*tripSession),
	}
}

// SelectTrip begins tracking a trip and returns the canonical tracked
// party id. Selecting an already-tracked trip refreshes the trip data
// without resetting tracking state; a new trip id always starts from a
// clean session.
func (t *TrackerUC) SelectTrip(ctx context.Context, trip *models.Trip) (string, error) {
	if trip == nil || trip.ID == "" {
		return "", ErrTripNotFound
	}

	canonicalID, ok := ResolveTrackedParty(trip)
	if !ok {
		return "", ErrNoTrackedParty
	}

	t.mu.Lock()
	if existing, found := t.sessions[trip.ID]; found {
		existing.trip = trip
		existing.canonicalID = canonicalID
		joinReq := existing.joinReq
		t.mu.Unlock()

		// Rejoin is idempotent on the receiving side
		t.publishRoomJoin(ctx, joinReq)
		return canonicalID, nil
	}

	t.generation++
	session := &tripSession{
		trip:        trip,
		canonicalID: canonicalID,
		generation:  t.generation,
		cache:       NewLocationCache(),
		geofence:    NewGeofenceMonitor(t.cfg.Tracking.PickupRadiusMeters, t.cfg.Tracking.DropoffRadiusMeters),
		joinReq: models.RoomJoinRequest{
			TrackedPartyID: canonicalID,
			RequesterRole:  "observer",
			RequesterID:    uuid.NewString(),
			TripID:         trip.ID,
		},
		debounceRoute:   debounce.New(time.Duration(t.cfg.Tracking.RouteDebounceSeconds) * time.Second),
		debouncePublish: debounce.New(time.Duration(t.cfg.Tracking.PublishDebounceSeconds) * time.Second),
	}
	t.sessions[trip.ID] = session
	joinReq := session.joinReq
	t.mu.Unlock()

	logger.Info("Trip selected for tracking",
		logger.String("trip_id", trip.ID),
		logger.String("tracked_party_id", canonicalID),
		logger.String("status", string(trip.Status)))

	t.publishRoomJoin(ctx, joinReq)
	return canonicalID, nil
}

// ClearTrip stops tracking a trip and tears down its state
func (t *TrackerUC) ClearTrip(ctx context.Context, tripID string) error {
	t.mu.Lock()
	session, found := t.sessions[tripID]
	var leaveReq models.RoomJoinRequest
	if found {
		delete(t.sessions, tripID)
		// Invalidate any in-flight route fetch or debounce timer
		session.generation = 0
		leaveReq = session.joinReq
	}
	t.mu.Unlock()

	if !found {
		return ErrTripNotFound
	}

	if err := t.gw.PublishRoomLeave(ctx, leaveReq); err != nil {
		logger.Warn("Room leave not announced",
			logger.String("trip_id", tripID),
			logger.String("tracked_party_id", leaveReq.TrackedPartyID),
			logger.Err(err))
	}

	if err := t.repo.EvictTripRoutes(ctx, tripID); err != nil {
		logger.Warn("Failed to evict cached routes",
			logger.String("trip_id", tripID),
			logger.Err(err))
	}

	logger.Info("Trip tracking cleared", logger.String("trip_id", tripID))
	return nil
}

// IngestFix processes a location fix from either the party's own
// positioning hardware or the realtime channel. Invalid and unmatched
// fixes are dropped, not queued: another fix will arrive.
func (t *TrackerUC) IngestFix(ctx context.Context, partyID string, fix models.LocationFix, source models.FixSource) error {
	if err := ValidateFix(fix); err != nil {
		logger.Debug("Dropping invalid location fix",
			logger.String("party_id", partyID),
			logger.Float64("lat", fix.Latitude),
			logger.Float64("lng", fix.Longitude),
			logger.Err(err))
		return nil
	}

	if fix.Timestamp == 0 {
		fix.Timestamp = time.Now().UnixMilli()
	}

	t.mu.Lock()
	session := t.matchSessionLocked(partyID)
	if session == nil {
		t.mu.Unlock()
		logger.Debug("No active trip tracks this party, dropping fix",
			logger.String("party_id", partyID))
		return nil
	}

	prev, hadPrev := session.cache.Get(session.canonicalID)
	if !session.cache.Update(session.canonicalID, fix) {
		t.mu.Unlock()
		return nil
	}
	if hadPrev {
		session.prevFix = &prev
	}

	canonicalID := session.canonicalID
	trip := session.trip
	generation := session.generation
	point := utils.GeoPointFromFix(fix)
	needsRoute := t.needsRouteRecomputeLocked(session, point)
	t.mu.Unlock()

	// Persist the last known location for other services; tracking
	// continues even when the store is down.
	if err := t.repo.StoreLocation(ctx, canonicalID, fix); err != nil {
		logger.Warn("Failed to persist last known location",
			logger.String("party_id", canonicalID),
			logger.Err(err))
	}

	t.evaluateArrivals(ctx, session, trip, point, fix)

	if needsRoute {
		t.scheduleRoute(session, trip, generation, point)
	}

	t.emitState(ctx, session, fix)

	if source == models.FixSourceSelf {
		t.schedulePublish(session, canonicalID, fix)
	}
	return nil
}

// matchSessionLocked finds the session whose canonical party id the
// event party id refers to. Caller holds the tracker mutex.
func (t *TrackerUC) matchSessionLocked(partyID string) *tripSession {
	for _, session := range t.sessions {
		if IsPartyMatch(partyID, session.canonicalID) {
			return session
		}
	}
	return nil
}

// needsRouteRecomputeLocked reports whether the fix moved far enough
// from the last computed route origin to warrant a provider call.
func (t *TrackerUC) needsRouteRecomputeLocked(session *tripSession, point utils.GeoPoint) bool {
	if session.route == nil || !session.hasRouteOrigin {
		return true
	}
	return utils.DistanceMeters(session.routeOrigin, point) > t.cfg.Tracking.RecomputeDistanceMeters
}

// evaluateArrivals runs the geofence checks and publishes one-shot
// arrival events. Never fatal.
func (t *TrackerUC) evaluateArrivals(ctx context.Context, session *tripSession, trip *models.Trip, point utils.GeoPoint, fix models.LocationFix) {
	if _, signal := session.geofence.EvaluatePickup(point, trip.Pickup); signal {
		t.publishArrival(ctx, session, trip, models.ArrivalPickup, trip.Pickup, point, fix)
	}
	if _, signal := session.geofence.EvaluateDropoff(point, trip.Dropoff); signal {
		t.publishArrival(ctx, session, trip, models.ArrivalDropoff, trip.Dropoff, point, fix)
	}
}

func (t *TrackerUC) publishArrival(ctx context.Context, session *tripSession, trip *models.Trip, kind models.ArrivalKind, waypoint models.Waypoint, point utils.GeoPoint, fix models.LocationFix) {
	event := models.ArrivalEvent{
		TripID:         trip.ID,
		TrackedPartyID: session.canonicalID,
		Kind:           kind,
		Waypoint:       waypoint,
		DistanceMeters: utils.DistanceMeters(point, utils.GeoPoint{Latitude: waypoint.Latitude, Longitude: waypoint.Longitude}),
		Timestamp:      fix.Timestamp,
	}

	logger.Info("Arrival geofence entered",
		logger.String("trip_id", trip.ID),
		logger.String("waypoint", waypoint.Name),
		logger.Float64("distance_m", event.DistanceMeters))

	if err := t.gw.PublishArrival(ctx, event); err != nil {
		logger.Warn("Failed to publish arrival event",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
}

// scheduleRoute coalesces route recomputation. A trailing-edge
// debouncer alone never fires while fixes keep arriving faster than
// its interval, so when the interval has already elapsed since the
// last run the work starts immediately instead of resetting the timer.
func (t *TrackerUC) scheduleRoute(session *tripSession, trip *models.Trip, generation uint64, origin utils.GeoPoint) {
	interval := time.Duration(t.cfg.Tracking.RouteDebounceSeconds) * time.Second

	t.mu.Lock()
	if time.Since(session.lastRouteRun) >= interval {
		session.lastRouteRun = time.Now()
		t.mu.Unlock()
		go t.computeRoute(context.Background(), trip, generation, origin)
		return
	}
	t.mu.Unlock()

	session.debounceRoute(func() {
		t.mu.Lock()
		session.lastRouteRun = time.Now()
		t.mu.Unlock()
		t.computeRoute(context.Background(), trip, generation, origin)
	})
}

// computeRoute fetches the route for a generation snapshot and applies
// it only if the session still belongs to that generation. A result
// for a superseded trip is silently dropped.
func (t *TrackerUC) computeRoute(ctx context.Context, trip *models.Trip, generation uint64, origin utils.GeoPoint) {
	route, err := t.routes.GetRoute(ctx, trip, origin)
	if err != nil {
		logger.Warn("Route computation failed",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
		return
	}

	t.mu.Lock()
	session, found := t.sessions[trip.ID]
	if !found || session.generation != generation {
		t.mu.Unlock()
		logger.Debug("Dropping route result for superseded trip",
			logger.String("trip_id", trip.ID))
		return
	}
	session.route = route
	session.routeOrigin = origin
	session.hasRouteOrigin = true
	fix, hasFix := session.cache.Get(session.canonicalID)
	t.mu.Unlock()

	if hasFix {
		t.emitState(ctx, session, fix)
	}
}

// emitState assembles and publishes the renderable tracking state
func (t *TrackerUC) emitState(ctx context.Context, session *tripSession, fix models.LocationFix) {
	t.mu.Lock()
	trip := session.trip
	route := session.route
	prevFix := session.prevFix
	geofence := session.geofence

	point := utils.GeoPointFromFix(fix)
	position := point
	var routeCoords []models.Coordinate
	if route != nil {
		routeCoords = route.Coordinates
		if snapped, ok := utils.SnapToRoute(point, routeCoords, t.cfg.Tracking.SnapToleranceMeters); ok {
			position = snapped
		}
	}

	next := t.nextWaypoint(trip)
	heading := EstimateHeading(fix, prevFix, routeCoords, next)

	distance, eta := t.distanceAndETA(route, point, next)

	state := &models.TrackingState{
		TripID:         trip.ID,
		TrackedPartyID: session.canonicalID,
		Position: models.Position{
			Latitude:  position.Latitude,
			Longitude: position.Longitude,
			Heading:   heading,
		},
		RoutePolyline:  routeCoords,
		DistanceMeters: distance,
		ETASeconds:     eta,
		ArrivedPickup:  geofence.PickupSignaled(),
		ArrivedDropoff: geofence.DropoffSignaled(),
	}
	session.state = state
	t.mu.Unlock()

	if err := t.gw.PublishTrackingState(ctx, *state); err != nil {
		logger.Warn("Failed to publish tracking state",
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
}

// nextWaypoint is the waypoint the trip is currently heading to
func (t *TrackerUC) nextWaypoint(trip *models.Trip) *models.Waypoint {
	if trip.Status.Before(models.TripStatusLoaded) {
		return &trip.Pickup
	}
	return &trip.Dropoff
}

// distanceAndETA never leaves the UI-facing values undefined: without
// a computed route it estimates from the straight-line distance and
// the assumed average speed.
func (t *TrackerUC) distanceAndETA(route *models.RouteInfo, point utils.GeoPoint, next *models.Waypoint) (float64, float64) {
	if route != nil {
		return route.DistanceMeters, route.DurationSeconds
	}
	if next == nil {
		return 0, 0
	}

	dist := utils.DistanceMeters(point, utils.GeoPoint{Latitude: next.Latitude, Longitude: next.Longitude})
	speed := t.cfg.Tracking.FallbackSpeedKmh
	if speed <= 0 {
		speed = 40
	}
	return dist, dist / (speed * 1000.0 / 3600.0)
}

// schedulePublish forwards an own fix to the realtime channel. Bursts
// of GPS callbacks coalesce into one message, but a steady sub-interval
// cadence still publishes once per interval rather than waiting for a
// gap that never comes.
func (t *TrackerUC) schedulePublish(session *tripSession, canonicalID string, fix models.LocationFix) {
	update := models.LocationUpdate{
		UserID:    canonicalID,
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Heading:   fix.Heading,
		Accuracy:  fix.Accuracy,
		Speed:     fix.Speed,
		Geohash:   utils.EncodeLocation(utils.GeoPointFromFix(fix), geohashPrecision),
		Timestamp: fix.Timestamp,
	}
	interval := time.Duration(t.cfg.Tracking.PublishDebounceSeconds) * time.Second

	t.mu.Lock()
	session.pendingUpdate = &update
	if time.Since(session.lastPublishRun) >= interval {
		session.lastPublishRun = time.Now()
		t.mu.Unlock()
		t.flushPendingUpdate(session)
		return
	}
	t.mu.Unlock()

	session.debouncePublish(func() {
		t.mu.Lock()
		session.lastPublishRun = time.Now()
		t.mu.Unlock()
		t.flushPendingUpdate(session)
	})
}

func (t *TrackerUC) flushPendingUpdate(session *tripSession) {
	t.mu.Lock()
	pending := session.pendingUpdate
	session.pendingUpdate = nil
	t.mu.Unlock()

	if pending == nil {
		return
	}
	if err := t.gw.PublishLocationUpdate(context.Background(), *pending); err != nil {
		logger.Warn("Failed to publish location update",
			logger.String("party_id", pending.UserID),
			logger.Err(err))
	}
}

func (t *TrackerUC) publishRoomJoin(ctx context.Context, req models.RoomJoinRequest) {
	if err := t.gw.PublishRoomJoin(ctx, req); err != nil {
		// The channel may be down; the join is replayed on reconnect
		logger.Warn("Room join deferred",
			logger.String("trip_id", req.TripID),
			logger.String("tracked_party_id", req.TrackedPartyID),
			logger.Err(err))
	}
}

// ReplayRoomJoins re-announces room membership for all active trips.
// Wired to the realtime channel's reconnect event.
func (t *TrackerUC) ReplayRoomJoins(ctx context.Context) {
	t.mu.Lock()
	joins := make([]models.RoomJoinRequest, 0, len(t.sessions))
	for _, session := range t.sessions {
		joins = append(joins, session.joinReq)
	}
	t.mu.Unlock()

	for _, req := range joins {
		t.publishRoomJoin(ctx, req)
	}
}

// CurrentState returns the latest renderable state for a trip
func (t *TrackerUC) CurrentState(ctx context.Context, tripID string) (*models.TrackingState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, found := t.sessions[tripID]
	if !found {
		return nil, ErrTripNotFound
	}
	if session.state == nil {
		return nil, ErrNoActiveTrip
	}

	state := *session.state
	return &state, nil
}

// ActiveRoute returns the current route for a trip, nil when no route
// has been computed yet.
func (t *TrackerUC) ActiveRoute(ctx context.Context, tripID string) (*models.RouteInfo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, found := t.sessions[tripID]
	if !found {
		return nil, ErrTripNotFound
	}
	return session.route, nil
}

// LastKnownLocation returns the freshest fix for a party, checking the
// in-memory caches first and the repository second.
func (t *TrackerUC) LastKnownLocation(ctx context.Context, partyID string) (*models.LocationFix, error) {
	t.mu.Lock()
	session := t.matchSessionLocked(partyID)
	if session != nil {
		if fix, ok := session.cache.Get(session.canonicalID); ok {
			t.mu.Unlock()
			return &fix, nil
		}
	}
	t.mu.Unlock()

	return t.repo.GetLastLocation(ctx, partyID)
}

// NearbyParties lists parties whose last known position is within
// radiusMeters of a point.
func (t *TrackerUC) NearbyParties(ctx context.Context, point utils.GeoPoint, radiusMeters float64) ([]models.NearbyParty, error) {
	return t.repo.FindNearbyParties(ctx, point, radiusMeters)
}
