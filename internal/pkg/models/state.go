package models

// Position is a renderable marker position with direction of travel
type Position struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Heading   float64 `json:"heading"`
}

// TrackingState is the renderable state emitted to observers of a
// trip. Drawing it is a UI concern.
type TrackingState struct {
	TripID         string       `json:"trip_id"`
	TrackedPartyID string       `json:"tracked_party_id"`
	Position       Position     `json:"position"`
	RoutePolyline  []Coordinate `json:"route_polyline,omitempty"`
	DistanceMeters float64      `json:"distance_meters"`
	ETASeconds     float64      `json:"eta_seconds"`
	ArrivedPickup  bool         `json:"arrived_pickup"`
	ArrivedDropoff bool         `json:"arrived_dropoff"`
}

// ArrivalKind identifies which trip waypoint a geofence guards
type ArrivalKind string

const (
	ArrivalPickup  ArrivalKind = "pickup"
	ArrivalDropoff ArrivalKind = "dropoff"
)

// ArrivalEvent is published once when a tracked party first enters a
// waypoint's geofence radius.
type ArrivalEvent struct {
	TripID         string      `json:"trip_id"`
	TrackedPartyID string      `json:"tracked_party_id"`
	Kind           ArrivalKind `json:"kind"`
	Waypoint       Waypoint    `json:"waypoint"`
	DistanceMeters float64     `json:"distance_meters"`
	Timestamp      int64       `json:"timestamp"`
}
