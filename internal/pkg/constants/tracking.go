package constants

// Sentinel coordinate pairs used elsewhere in the product as "no
// location yet" placeholders. A fix matching either pair is never a
// real position and must not be propagated.
const (
	SentinelCityCenterLat = -6.200000
	SentinelCityCenterLng = 106.816666

	SentinelDepotLat = -6.175110
	SentinelDepotLng = 106.865036
)

// Geofence defaults. The pickup and dropoff radii are equal today but
// configured independently.
const (
	DefaultPickupRadiusMeters  = 1000.0
	DefaultDropoffRadiusMeters = 1000.0
)

// Route computation thresholds
const (
	// RecomputeDistanceMeters is how far the current fix must move
	// from the last computed route origin before a recompute is
	// triggered.
	RecomputeDistanceMeters = 30.0

	// RouteCacheBucketDecimals quantizes the route cache origin to
	// ~11 m cells. Must stay finer than RecomputeDistanceMeters.
	RouteCacheBucketDecimals = 4

	// DefaultSnapToleranceMeters is the maximum distance at which a
	// raw fix is snapped onto the route.
	DefaultSnapToleranceMeters = 2000.0

	// FallbackSpeedKmh is the assumed average speed for the
	// straight-line ETA estimate when the provider is unavailable.
	FallbackSpeedKmh = 40.0
)

// Polyline volume-control tiers
const (
	RouteVerbatimMaxPoints   = 1000
	RouteSmoothOnlyMaxPoints = 5000
	RouteSimplifyMaxPoints   = 10000
	RoutePointCap            = 2000

	RouteSmoothBlendFactor = 0.5

	RouteMinPointDistanceMeters           = 10.0
	RouteMinPointDistanceAggressiveMeters = 25.0
	RouteTurnPreserveDegrees              = 30.0
)

// Debounce delays
const (
	DefaultRouteDebounceSeconds   = 2
	DefaultPublishDebounceSeconds = 1
)
