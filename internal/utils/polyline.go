package utils

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	gopolyline "github.com/twpayne/go-polyline"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/models"
)

// DecodePolyline decodes a Google encoded polyline (1e5 precision)
// into route coordinates. Decoding is all-or-nothing: trailing garbage
// or a malformed varint fails the whole decode so a corrupted path is
// never rendered partially.
func DecodePolyline(encoded string) ([]models.Coordinate, error) {
	if encoded == "" {
		return nil, fmt.Errorf("empty polyline")
	}

	pairs, remaining, err := gopolyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}
	if len(remaining) > 0 {
		return nil, fmt.Errorf("trailing bytes after polyline decode")
	}

	coords := make([]models.Coordinate, len(pairs))
	for i, p := range pairs {
		coords[i] = models.Coordinate{Latitude: p[0], Longitude: p[1]}
	}
	return coords, nil
}

// EncodePolyline encodes coordinates back into polyline form. Used for
// fixtures and outbound payload compaction.
func EncodePolyline(coords []models.Coordinate) string {
	pairs := make([][]float64, len(coords))
	for i, c := range coords {
		pairs[i] = []float64{c.Latitude, c.Longitude}
	}
	return string(gopolyline.EncodeCoords(pairs))
}

// OptimizeRouteCoordinates bounds the rendering cost of very long
// routes. Tiers by point count, ascending aggressiveness:
//
//	<= 1000 points: verbatim
//	<= 5000 points: light smoothing only
//	<= 10000 points: distance/angle simplification, capping, smoothing
//	> 10000 points: Douglas-Peucker pre-pass, then the same but harder
//
// The first and last coordinate always survive.
func OptimizeRouteCoordinates(coords []models.Coordinate) []models.Coordinate {
	n := len(coords)
	if n <= constants.RouteVerbatimMaxPoints {
		return coords
	}

	if n <= constants.RouteSmoothOnlyMaxPoints {
		return smoothCoordinates(coords, constants.RouteSmoothBlendFactor)
	}

	minDist := constants.RouteMinPointDistanceMeters
	if n > constants.RouteSimplifyMaxPoints {
		minDist = constants.RouteMinPointDistanceAggressiveMeters
		coords = douglasPeuckerPass(coords)
	}

	out := simplifyCoordinates(coords, minDist, constants.RouteTurnPreserveDegrees)
	out = capCoordinates(out, constants.RoutePointCap)
	return smoothCoordinates(out, constants.RouteSmoothBlendFactor)
}

// douglasPeuckerPass runs a coarse geometric reduction before the
// distance/angle simplifier on extreme inputs.
func douglasPeuckerPass(coords []models.Coordinate) []models.Coordinate {
	line := make(orb.LineString, len(coords))
	for i, c := range coords {
		line[i] = orb.Point{c.Longitude, c.Latitude}
	}

	// ~0.00005 degrees is about 5 m of cross-track error
	reduced := simplify.DouglasPeucker(0.00005).Simplify(line).(orb.LineString)

	out := make([]models.Coordinate, len(reduced))
	for i, p := range reduced {
		out[i] = models.Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
	}
	return out
}

// smoothCoordinates applies light positional smoothing: each interior
// point is blended toward its predecessor at a fixed factor. No point
// is removed; endpoints are untouched.
func smoothCoordinates(coords []models.Coordinate, blend float64) []models.Coordinate {
	n := len(coords)
	if n <= 2 {
		return coords
	}

	out := make([]models.Coordinate, n)
	out[0] = coords[0]
	for i := 1; i < n-1; i++ {
		prev := out[i-1]
		cur := coords[i]
		out[i] = models.Coordinate{
			Latitude:  prev.Latitude + (cur.Latitude-prev.Latitude)*blend,
			Longitude: prev.Longitude + (cur.Longitude-prev.Longitude)*blend,
		}
	}
	out[n-1] = coords[n-1]
	return out
}

// simplifyCoordinates drops points closer than minDistMeters to the
// last kept point unless they mark a turn sharper than turnDeg, which
// is always preserved. Endpoints are always kept.
func simplifyCoordinates(coords []models.Coordinate, minDistMeters, turnDeg float64) []models.Coordinate {
	n := len(coords)
	if n <= 2 {
		return coords
	}

	out := make([]models.Coordinate, 0, n)
	out = append(out, coords[0])
	lastKept := coords[0]

	for i := 1; i < n-1; i++ {
		dist := DistanceMeters(GeoPointFromCoordinate(lastKept), GeoPointFromCoordinate(coords[i]))
		if dist >= minDistMeters || turnAngle(coords[i-1], coords[i], coords[i+1]) > turnDeg {
			out = append(out, coords[i])
			lastKept = coords[i]
		}
	}

	out = append(out, coords[n-1])
	return out
}

// turnAngle returns the absolute heading change at cur in degrees [0,180]
func turnAngle(prev, cur, next models.Coordinate) float64 {
	in := Bearing(GeoPointFromCoordinate(prev), GeoPointFromCoordinate(cur))
	outB := Bearing(GeoPointFromCoordinate(cur), GeoPointFromCoordinate(next))

	diff := NormalizeBearing(outB - in)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// capCoordinates uniformly samples the sequence down to maxPoints,
// always keeping the first and last coordinate.
func capCoordinates(coords []models.Coordinate, maxPoints int) []models.Coordinate {
	n := len(coords)
	if maxPoints < 2 || n <= maxPoints {
		return coords
	}

	out := make([]models.Coordinate, 0, maxPoints)
	step := float64(n-1) / float64(maxPoints-1)
	for i := 0; i < maxPoints-1; i++ {
		out = append(out, coords[int(float64(i)*step)])
	}
	out = append(out, coords[n-1])
	return out
}
