package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/angkutin/tracking/internal/pkg/models"
)

// earthRadiusMeters is the mean Earth radius used for all great-circle math
const earthRadiusMeters = 6371000.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeoPointFromCoordinate converts a route coordinate to a GeoPoint
func GeoPointFromCoordinate(c models.Coordinate) GeoPoint {
	return GeoPoint{Latitude: c.Latitude, Longitude: c.Longitude}
}

// GeoPointFromFix converts a location fix to a GeoPoint
func GeoPointFromFix(f models.LocationFix) GeoPoint {
	return GeoPoint{Latitude: f.Latitude, Longitude: f.Longitude}
}

// DistanceMeters calculates the great-circle distance between two
// points in meters using the haversine formula.
func DistanceMeters(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Bearing computes the initial great-circle bearing from one point to
// another, in degrees [0,360), 0 = north.
func Bearing(from, to GeoPoint) float64 {
	lat1 := from.Latitude * math.Pi / 180.0
	lat2 := to.Latitude * math.Pi / 180.0
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180.0

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return NormalizeBearing(math.Atan2(y, x) * 180.0 / math.Pi)
}

// NormalizeBearing wraps a bearing into [0,360)
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// SnapToRoute projects a point onto the closest segment of the route
// and returns the snapped point. Returns false when the route has fewer
// than two coordinates or the closest segment is farther than
// maxDistanceMeters.
func SnapToRoute(point GeoPoint, route []models.Coordinate, maxDistanceMeters float64) (GeoPoint, bool) {
	if len(route) < 2 {
		return GeoPoint{}, false
	}

	best := GeoPoint{}
	bestDist := math.MaxFloat64

	for i := 0; i < len(route)-1; i++ {
		a := GeoPointFromCoordinate(route[i])
		b := GeoPointFromCoordinate(route[i+1])

		candidate := closestPointOnSegment(point, a, b)
		dist := DistanceMeters(point, candidate)
		if dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}

	if bestDist > maxDistanceMeters {
		return GeoPoint{}, false
	}
	return best, true
}

// closestPointOnSegment projects point onto segment a-b in a local
// planar approximation, clamping the projection parameter to [0,1].
// Longitude deltas are scaled by cos(lat) so the projection parameter
// is not distorted away from the equator.
func closestPointOnSegment(point, a, b GeoPoint) GeoPoint {
	latScale := math.Cos(a.Latitude * math.Pi / 180.0)

	px := (point.Longitude - a.Longitude) * latScale
	py := point.Latitude - a.Latitude
	bx := (b.Longitude - a.Longitude) * latScale
	by := b.Latitude - a.Latitude

	segLenSq := bx*bx + by*by
	if segLenSq == 0 {
		return a
	}

	t := (px*bx + py*by) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return GeoPoint{
		Latitude:  a.Latitude + t*by,
		Longitude: a.Longitude + t*(bx/latScale),
	}
}

// NearestCoordinateIndex returns the index of the route coordinate
// closest to the point by planar Euclidean distance, or -1 for an
// empty route.
func NearestCoordinateIndex(point GeoPoint, route []models.Coordinate) int {
	if len(route) == 0 {
		return -1
	}

	p := orb.Point{point.Longitude, point.Latitude}
	best := -1
	bestDist := math.MaxFloat64
	for i, c := range route {
		d := planar.DistanceSquared(p, orb.Point{c.Longitude, c.Latitude})
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// BucketKey quantizes a point to the given number of decimal degrees
// for use as a cache key component. Four decimals is roughly an 11 m
// cell.
func BucketKey(point GeoPoint, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	lat := math.Round(point.Latitude*scale) / scale
	lng := math.Round(point.Longitude*scale) / scale
	return fmt.Sprintf("%.*f,%.*f", decimals, lat, decimals, lng)
}

// EncodeLocation converts a point to a geohash string
func EncodeLocation(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
