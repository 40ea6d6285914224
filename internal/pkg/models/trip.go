package models

import "time"

// TripStatus represents the current status of a trip. Transitions are
// driven by the surrounding application in this fixed order.
type TripStatus string

const (
	TripStatusNotStarted        TripStatus = "NOT_STARTED"
	TripStatusEnRouteToPickup   TripStatus = "EN_ROUTE_TO_PICKUP"
	TripStatusArrivedPickup     TripStatus = "ARRIVED_PICKUP"
	TripStatusLoaded            TripStatus = "LOADED"
	TripStatusEnRouteToDelivery TripStatus = "EN_ROUTE_TO_DELIVERY"
	TripStatusArrivedDelivery   TripStatus = "ARRIVED_DELIVERY"
	TripStatusDelivered         TripStatus = "DELIVERED"
)

// tripStatusOrder fixes the progression sequence of a trip
var tripStatusOrder = map[TripStatus]int{
	TripStatusNotStarted:        0,
	TripStatusEnRouteToPickup:   1,
	TripStatusArrivedPickup:     2,
	TripStatusLoaded:            3,
	TripStatusEnRouteToDelivery: 4,
	TripStatusArrivedDelivery:   5,
	TripStatusDelivered:         6,
}

// Order returns the position of the status in the trip progression,
// or -1 for an unknown status.
func (s TripStatus) Order() int {
	if o, ok := tripStatusOrder[s]; ok {
		return o
	}
	return -1
}

// Before reports whether s precedes other in the trip progression
func (s TripStatus) Before(other TripStatus) bool {
	return s.Order() >= 0 && other.Order() >= 0 && s.Order() < other.Order()
}

// Waypoint is a named stop on a trip
type Waypoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// ParticipantStatus values that mark a contract participant as the
// currently assigned one. Upstream is inconsistent about which of the
// three it writes.
const (
	ParticipantStatusActive   = "active"
	ParticipantStatusAccepted = "accepted"
	ParticipantStatusAssigned = "assigned"
)

// ParticipantRoleDriver is the role of the party being tracked
const ParticipantRoleDriver = "driver"

// Participant is a party attached to a contract
type Participant struct {
	PartyID string `json:"party_id"`
	Role    string `json:"role"`
	Status  string `json:"status"`
}

// Contract is an agreement nested under a trip's job application
type Contract struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	Participants []Participant `json:"participants"`
}

// Trip is owned by the backend; the tracking core treats it as
// read-only input, replaced wholesale when the user switches trips.
type Trip struct {
	ID              string     `json:"id"`
	JobID           string     `json:"job_id,omitempty"`
	Pickup          Waypoint   `json:"pickup"`
	Dropoff         Waypoint   `json:"dropoff"`
	AssignedPartyID string     `json:"assigned_party_id,omitempty"`
	Status          TripStatus `json:"status"`
	Contracts       []Contract `json:"contracts,omitempty"`
	CreatedAt       time.Time  `json:"created_at,omitempty"`
}
