package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Room events
	EventJoinRoom   = "join_room"
	EventLeaveRoom  = "leave_room"
	EventRoomJoined = "room_joined"

	// Location events
	EventLocationUpdate = "location_update"
	EventTrackingState  = "tracking_state"

	// Trip events
	EventTripSelected   = "trip_selected"
	EventArrivalPickup  = "arrival_pickup"
	EventArrivalDropoff = "arrival_dropoff"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorInvalidLocation  = "invalid_location"
	ErrorTripNotFound     = "trip_not_found"
	ErrorRoomJoinFailed   = "room_join_failed"
)

// ErrorSeverity categorizes how much error detail a client may see
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
