package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
)

var warehouse = models.Waypoint{Name: "warehouse", Latitude: -6.2100, Longitude: 106.8300}

// pointNear returns a point offset north of the waypoint by roughly
// meters (1 degree latitude is ~111.19 km).
func pointNear(w models.Waypoint, meters float64) utils.GeoPoint {
	return utils.GeoPoint{
		Latitude:  w.Latitude + meters/111190.0,
		Longitude: w.Longitude,
	}
}

func TestEvaluateGeofence(t *testing.T) {
	t.Run("inside radius signals", func(t *testing.T) {
		within, signal := EvaluateGeofence(pointNear(warehouse, 500), warehouse, 1000, false)
		assert.True(t, within)
		assert.True(t, signal)
	})

	t.Run("inside radius already signaled", func(t *testing.T) {
		within, signal := EvaluateGeofence(pointNear(warehouse, 500), warehouse, 1000, true)
		assert.True(t, within)
		assert.False(t, signal)
	})

	t.Run("outside radius", func(t *testing.T) {
		within, signal := EvaluateGeofence(pointNear(warehouse, 1500), warehouse, 1000, false)
		assert.False(t, within)
		assert.False(t, signal)
	})

	t.Run("zero waypoint never matches", func(t *testing.T) {
		within, signal := EvaluateGeofence(utils.GeoPoint{Latitude: 0.0001, Longitude: 0.0001}, models.Waypoint{}, 1000, false)
		assert.False(t, within)
		assert.False(t, signal)
	})
}

func TestGeofenceMonitor_OneShotAcrossFixStream(t *testing.T) {
	monitor := NewGeofenceMonitor(1000, 1000)

	// Approach: each fix is closer than the last, crossing the radius
	// on the fifth fix.
	distances := []float64{5000, 3000, 2000, 1200, 800, 400, 100, 50}
	signals := 0
	signalIndex := -1
	for i, d := range distances {
		_, signal := monitor.EvaluatePickup(pointNear(warehouse, d), warehouse)
		if signal {
			signals++
			signalIndex = i
		}
	}

	assert.Equal(t, 1, signals)
	assert.Equal(t, 4, signalIndex)
	assert.True(t, monitor.PickupSignaled())
	assert.False(t, monitor.DropoffSignaled())
}

func TestGeofenceMonitor_IndependentWaypoints(t *testing.T) {
	dropoff := models.Waypoint{Name: "dock 4", Latitude: -6.1754, Longitude: 106.8272}
	monitor := NewGeofenceMonitor(1000, 1000)

	_, pickupSignal := monitor.EvaluatePickup(pointNear(warehouse, 200), warehouse)
	assert.True(t, pickupSignal)

	// Dropoff latch is untouched by the pickup signal
	_, dropoffSignal := monitor.EvaluateDropoff(pointNear(dropoff, 200), dropoff)
	assert.True(t, dropoffSignal)

	_, again := monitor.EvaluateDropoff(pointNear(dropoff, 100), dropoff)
	assert.False(t, again)
}
