package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/tracking/internal/pkg/models"
)

func fixAt(lat, lng float64, ts int64) models.LocationFix {
	return models.LocationFix{Latitude: lat, Longitude: lng, Timestamp: ts}
}

func TestLocationCache_MonotonicUpdates(t *testing.T) {
	cache := NewLocationCache()

	assert.True(t, cache.Update("7", fixAt(-6.21, 106.83, 1000)))
	assert.True(t, cache.Update("7", fixAt(-6.22, 106.84, 2000)))

	// Out of order delivery: an older fix never wins
	assert.False(t, cache.Update("7", fixAt(-6.20, 106.82, 1500)))

	got, ok := cache.Get("7")
	require.True(t, ok)
	assert.Equal(t, int64(2000), got.Timestamp)
	assert.Equal(t, -6.22, got.Latitude)
}

func TestLocationCache_EqualTimestampKeepsCurrent(t *testing.T) {
	cache := NewLocationCache()

	cache.Update("7", fixAt(-6.21, 106.83, 1000))
	assert.False(t, cache.Update("7", fixAt(-6.99, 106.99, 1000)))

	got, _ := cache.Get("7")
	assert.Equal(t, -6.21, got.Latitude)
}

func TestLocationCache_UnknownParty(t *testing.T) {
	cache := NewLocationCache()

	_, ok := cache.Get("unknown")
	assert.False(t, ok)
}

func TestLocationCache_PartiesAreIndependent(t *testing.T) {
	cache := NewLocationCache()

	cache.Update("7", fixAt(-6.21, 106.83, 1000))
	cache.Update("9", fixAt(-6.50, 107.00, 500))

	a, _ := cache.Get("7")
	b, _ := cache.Get("9")
	assert.Equal(t, -6.21, a.Latitude)
	assert.Equal(t, -6.50, b.Latitude)
}
