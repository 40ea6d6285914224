package constants

// NATS subjects used by the tracking service
const (
	// SubjectLocationUpdate carries accepted location fixes between
	// services and from mobile gateways.
	SubjectLocationUpdate = "tracking.location.update"

	// SubjectRoomJoin carries room join/subscribe requests issued on
	// trip selection.
	SubjectRoomJoin = "tracking.room.join"

	// SubjectRoomLeave announces that a trip's observers should be
	// removed from the tracked party's room.
	SubjectRoomLeave = "tracking.room.leave"

	// SubjectArrival carries one-shot geofence arrival events.
	SubjectArrival = "tracking.trip.arrival"

	// SubjectTrackingState carries the emitted renderable state for
	// downstream consumers.
	SubjectTrackingState = "tracking.state"
)
