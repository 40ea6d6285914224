package models

// Coordinate is a single point on a route polyline
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// RouteInfo is the result of a route computation. Immutable once
// computed; superseded, not mutated, on recomputation.
type RouteInfo struct {
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Coordinates     []Coordinate `json:"coordinates"`
	// Fallback is set when the provider was unavailable and the
	// distance/ETA are straight-line estimates.
	Fallback bool `json:"fallback,omitempty"`
}

// VehicleProfile carries the vehicle constraints a route request is
// computed against.
type VehicleProfile struct {
	Type         string  `json:"type"`
	LengthMeters float64 `json:"length_meters,omitempty"`
	WidthMeters  float64 `json:"width_meters,omitempty"`
	HeightMeters float64 `json:"height_meters,omitempty"`
	WeightKg     float64 `json:"weight_kg,omitempty"`
}

// RouteAvoid lists road features to route around
type RouteAvoid struct {
	Tolls    bool `json:"tolls,omitempty"`
	Ferries  bool `json:"ferries,omitempty"`
	Highways bool `json:"highways,omitempty"`
}

// RouteRequest is the request sent to a route provider
type RouteRequest struct {
	Origin      Coordinate     `json:"origin"`
	Destination Coordinate     `json:"destination"`
	Waypoints   []Coordinate   `json:"waypoints,omitempty"`
	Vehicle     VehicleProfile `json:"vehicle"`
	Avoid       RouteAvoid     `json:"avoid"`
}

// RouteStep is a single step of a route leg with its own geometry
type RouteStep struct {
	Polyline string `json:"polyline"`
}

// RouteLeg is a provider route segment between consecutive waypoints
type RouteLeg struct {
	Steps []RouteStep `json:"steps"`
}

// RouteResponse is the provider's route computation result. Polyline
// is the overview geometry; per-step polylines, when present, are
// preferred for higher fidelity.
type RouteResponse struct {
	DistanceMeters  float64    `json:"distance_meters"`
	DurationSeconds float64    `json:"duration_seconds"`
	Polyline        string     `json:"polyline"`
	Legs            []RouteLeg `json:"legs,omitempty"`
}
