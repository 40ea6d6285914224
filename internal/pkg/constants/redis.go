package constants

import "time"

// Redis key formats
const (
	// Tracking service
	KeyPartyLocation = "party:location:%s" // Format: party:location:{party_id}
	KeyPartyGeo      = "parties:geo"       // Geo set of last known party positions
	KeyTripRoute     = "trip:route:%s:%s"  // Format: trip:route:{trip_id}:{origin_bucket}
	KeyTripRouteScan = "trip:route:%s:*"   // Scan pattern for trip-scoped eviction
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSpeed     = "speed"
	FieldAccuracy  = "accuracy"
	FieldTimestamp = "ts"
)

// TTLs
const (
	// PartyLocationTTL keeps a last known location long enough to
	// survive GPS dropouts without accumulating stale parties.
	PartyLocationTTL = 24 * time.Hour

	// RouteCacheTTL bounds how long a computed route is reused.
	RouteCacheTTL = 30 * time.Minute
)
