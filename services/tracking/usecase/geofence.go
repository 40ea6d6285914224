package usecase

import (
	"sync"

	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
)

// EvaluateGeofence computes proximity of a fix to a waypoint.
// shouldSignal is true only when the fix is inside the radius and
// arrival has not been signaled before; the caller owns the
// alreadySignaled flag. A missing waypoint yields withinRadius=false.
func EvaluateGeofence(fix utils.GeoPoint, waypoint models.Waypoint, radiusMeters float64, alreadySignaled bool) (withinRadius, shouldSignal bool) {
	if waypoint.Latitude == 0 && waypoint.Longitude == 0 {
		return false, false
	}

	dist := utils.DistanceMeters(fix, utils.GeoPoint{
		Latitude:  waypoint.Latitude,
		Longitude: waypoint.Longitude,
	})
	within := dist <= radiusMeters
	return within, within && !alreadySignaled
}

// GeofenceMonitor tracks one-shot arrival state for a trip's pickup
// and dropoff waypoints. Location updates arrive continuously, so
// without the one-shot latch arrival would re-fire on every fix inside
// the radius. Flags never reset during a trip's lifetime; a new trip
// gets a new monitor.
type GeofenceMonitor struct {
	mu            sync.Mutex
	pickupRadius  float64
	dropoffRadius float64

	pickupSignaled  bool
	dropoffSignaled bool
}

// NewGeofenceMonitor creates a monitor with per-waypoint radii
func NewGeofenceMonitor(pickupRadiusMeters, dropoffRadiusMeters float64) *GeofenceMonitor {
	return &GeofenceMonitor{
		pickupRadius:  pickupRadiusMeters,
		dropoffRadius: dropoffRadiusMeters,
	}
}

// EvaluatePickup evaluates the fix against the trip's pickup waypoint
func (m *GeofenceMonitor) EvaluatePickup(fix utils.GeoPoint, waypoint models.Waypoint) (withinRadius, shouldSignal bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	within, signal := EvaluateGeofence(fix, waypoint, m.pickupRadius, m.pickupSignaled)
	if signal {
		m.pickupSignaled = true
	}
	return within, signal
}

// EvaluateDropoff evaluates the fix against the trip's dropoff waypoint
func (m *GeofenceMonitor) EvaluateDropoff(fix utils.GeoPoint, waypoint models.Waypoint) (withinRadius, shouldSignal bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	within, signal := EvaluateGeofence(fix, waypoint, m.dropoffRadius, m.dropoffSignaled)
	if signal {
		m.dropoffSignaled = true
	}
	return within, signal
}

// PickupSignaled reports whether pickup arrival was already signaled
func (m *GeofenceMonitor) PickupSignaled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pickupSignaled
}

// DropoffSignaled reports whether dropoff arrival was already signaled
func (m *GeofenceMonitor) DropoffSignaled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dropoffSignaled
}
