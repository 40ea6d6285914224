package models

import "time"

// FixSource identifies where a location fix entered the system
type FixSource string

const (
	// FixSourceSelf is the device's own positioning hardware
	FixSourceSelf FixSource = "self"
	// FixSourceRemote is a fix delivered over the realtime channel
	FixSourceRemote FixSource = "remote"
)

// LocationFix represents a single GPS sample with optional metadata
type LocationFix struct {
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lng"`
	Heading   *float64 `json:"heading,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Timestamp int64    `json:"timestamp"` // unix milliseconds
}

// Time returns the fix timestamp as a time.Time
func (f LocationFix) Time() time.Time {
	return time.UnixMilli(f.Timestamp)
}

// LocationUpdate is the wire shape of an inbound/outbound fix event
type LocationUpdate struct {
	UserID    string   `json:"user_id"`
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lng"`
	Heading   *float64 `json:"heading,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Battery   *float64 `json:"battery,omitempty"`
	Provider  string   `json:"provider,omitempty"`
	Geohash   string   `json:"geohash,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// Fix extracts the LocationFix carried by a wire update
func (u LocationUpdate) Fix() LocationFix {
	return LocationFix{
		Latitude:  u.Latitude,
		Longitude: u.Longitude,
		Heading:   u.Heading,
		Accuracy:  u.Accuracy,
		Speed:     u.Speed,
		Timestamp: u.Timestamp,
	}
}

// NearbyParty is a geo index hit for a party near a point
type NearbyParty struct {
	PartyID        string  `json:"party_id"`
	Latitude       float64 `json:"lat"`
	Longitude      float64 `json:"lng"`
	DistanceMeters float64 `json:"distance_m"`
}

// RoomJoinRequest asks the realtime channel to start delivering a
// tracked party's fixes to the requester. Idempotent per trip selection.
type RoomJoinRequest struct {
	TrackedPartyID string `json:"tracked_party_id"`
	RequesterRole  string `json:"requester_role"`
	RequesterID    string `json:"requester_id"`
	TripID         string `json:"trip_id"`
}
