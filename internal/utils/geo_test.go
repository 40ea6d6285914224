package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angkutin/tracking/internal/pkg/models"
)

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name: "Same point",
			point1: GeoPoint{
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			point2: GeoPoint{
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name: "Jakarta to Bandung (approximately)",
			point1: GeoPoint{
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			point2: GeoPoint{
				Latitude:  -6.914744,
				Longitude: 107.609810,
			},
			expected:  120000.0,
			tolerance: 10000.0,
		},
		{
			name: "One kilometer north",
			point1: GeoPoint{
				Latitude:  -6.175392,
				Longitude: 106.827153,
			},
			point2: GeoPoint{
				Latitude:  -6.166400,
				Longitude: 106.827153,
			},
			expected:  1000.0,
			tolerance: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := DistanceMeters(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, distance, tt.tolerance)
		})
	}
}

func TestBearing(t *testing.T) {
	origin := GeoPoint{Latitude: 0, Longitude: 0}

	tests := []struct {
		name      string
		to        GeoPoint
		expected  float64
		tolerance float64
	}{
		{"Due north", GeoPoint{Latitude: 1, Longitude: 0}, 0, 0.01},
		{"Due east", GeoPoint{Latitude: 0, Longitude: 1}, 90, 0.01},
		{"Due south", GeoPoint{Latitude: -1, Longitude: 0}, 180, 0.01},
		{"Due west", GeoPoint{Latitude: 0, Longitude: -1}, 270, 0.01},
		{"Northeast", GeoPoint{Latitude: 1, Longitude: 1}, 45, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bearing := Bearing(origin, tt.to)
			assert.InDelta(t, tt.expected, bearing, tt.tolerance)
			assert.GreaterOrEqual(t, bearing, 0.0)
			assert.Less(t, bearing, 360.0)
		})
	}
}

func TestNormalizeBearing(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeBearing(0))
	assert.Equal(t, 0.0, NormalizeBearing(360))
	assert.Equal(t, 10.0, NormalizeBearing(370))
	assert.Equal(t, 350.0, NormalizeBearing(-10))
	assert.Equal(t, 180.0, NormalizeBearing(-180))
}

func TestSnapToRoute(t *testing.T) {
	// Straight west-east route along the equator
	route := []models.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.01},
		{Latitude: 0, Longitude: 0.02},
	}

	t.Run("Point near route snaps onto segment", func(t *testing.T) {
		point := GeoPoint{Latitude: 0.001, Longitude: 0.005}

		snapped, ok := SnapToRoute(point, route, 2000)
		assert.True(t, ok)
		assert.InDelta(t, 0.0, snapped.Latitude, 1e-9)
		assert.InDelta(t, 0.005, snapped.Longitude, 1e-9)
	})

	t.Run("Point beyond tolerance returns false", func(t *testing.T) {
		// ~5.5 km off the route
		point := GeoPoint{Latitude: 0.05, Longitude: 0.005}

		_, ok := SnapToRoute(point, route, 2000)
		assert.False(t, ok)
	})

	t.Run("Projection clamps to segment endpoints", func(t *testing.T) {
		// Before the start of the route
		point := GeoPoint{Latitude: 0, Longitude: -0.005}

		snapped, ok := SnapToRoute(point, route, 2000)
		assert.True(t, ok)
		assert.InDelta(t, 0.0, snapped.Longitude, 1e-9)
	})

	t.Run("Too few coordinates returns false", func(t *testing.T) {
		_, ok := SnapToRoute(GeoPoint{}, route[:1], 2000)
		assert.False(t, ok)
	})
}

func TestNearestCoordinateIndex(t *testing.T) {
	route := []models.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.01},
		{Latitude: 0, Longitude: 0.02},
	}

	idx := NearestCoordinateIndex(GeoPoint{Latitude: 0.001, Longitude: 0.011}, route)
	assert.Equal(t, 1, idx)

	idx = NearestCoordinateIndex(GeoPoint{}, nil)
	assert.Equal(t, -1, idx)
}

func TestBucketKey(t *testing.T) {
	p1 := GeoPoint{Latitude: -6.1753921, Longitude: 106.8271534}
	p2 := GeoPoint{Latitude: -6.1753899, Longitude: 106.8271501}

	// Within the same ~11m cell
	assert.Equal(t, BucketKey(p1, 4), BucketKey(p2, 4))

	// Different cell
	p3 := GeoPoint{Latitude: -6.1763921, Longitude: 106.8271534}
	assert.NotEqual(t, BucketKey(p1, 4), BucketKey(p3, 4))

	assert.Equal(t, "-6.1754,106.8272", BucketKey(p1, 4))
}

func TestEncodeLocation(t *testing.T) {
	hash := EncodeLocation(GeoPoint{Latitude: -6.175392, Longitude: 106.827153}, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, -6.175392, lat, 0.01)
	assert.InDelta(t, 106.827153, lng, 0.01)
}

func TestClosestPointOnSegment_DegenerateSegment(t *testing.T) {
	a := GeoPoint{Latitude: 1, Longitude: 1}
	point := GeoPoint{Latitude: 2, Longitude: 2}

	got := closestPointOnSegment(point, a, a)
	assert.Equal(t, a, got)
	assert.False(t, math.IsNaN(got.Latitude))
}
