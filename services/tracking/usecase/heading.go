package usecase

import (
	"github.com/angkutin/tracking/internal/pkg/models"
	"github.com/angkutin/tracking/internal/utils"
)

// EstimateHeading derives the direction of travel for a fix, in
// degrees [0,360). Sources in priority order:
//
//  1. the GPS-reported heading carried by the fix
//  2. the initial bearing from the previous fix to the current one
//  3. the bearing toward the coordinate following the nearest route
//     coordinate
//  4. the bearing toward the trip's next named waypoint
//
// Returns 0 when no source is available.
func EstimateHeading(current models.LocationFix, previous *models.LocationFix, route []models.Coordinate, nextWaypoint *models.Waypoint) float64 {
	if current.Heading != nil {
		return utils.NormalizeBearing(*current.Heading)
	}

	cur := utils.GeoPointFromFix(current)

	if previous != nil {
		prev := utils.GeoPointFromFix(*previous)
		if prev != cur {
			return utils.Bearing(prev, cur)
		}
	}

	if len(route) >= 2 {
		idx := utils.NearestCoordinateIndex(cur, route)
		if idx >= 0 && idx < len(route)-1 {
			next := utils.GeoPointFromCoordinate(route[idx+1])
			return utils.Bearing(cur, next)
		}
	}

	if nextWaypoint != nil && !(nextWaypoint.Latitude == 0 && nextWaypoint.Longitude == 0) {
		return utils.Bearing(cur, utils.GeoPoint{
			Latitude:  nextWaypoint.Latitude,
			Longitude: nextWaypoint.Longitude,
		})
	}

	return 0
}
