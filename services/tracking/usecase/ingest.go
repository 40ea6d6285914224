package usecase

import (
	"errors"
	"math"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/models"
)

// Ingestion errors
var (
	ErrInvalidCoordinate  = errors.New("coordinate is not a finite non-zero value")
	ErrSentinelCoordinate = errors.New("coordinate matches a sentinel default position")
	ErrNoMatchingParty    = errors.New("no active trip tracks this party")
	ErrNoActiveTrip       = errors.New("no active trip")
)

// sentinelEpsilon is the tolerance for matching a fix against the
// designated default coordinate pairs.
const sentinelEpsilon = 1e-6

var sentinelPairs = [][2]float64{
	{constants.SentinelCityCenterLat, constants.SentinelCityCenterLng},
	{constants.SentinelDepotLat, constants.SentinelDepotLng},
}

// ValidateFix rejects fixes that must never be propagated as real
// positions: non-finite or zero coordinates, coordinates outside valid
// ranges, and the sentinel "no location yet" placeholder pairs.
func ValidateFix(fix models.LocationFix) error {
	if !isFiniteNonZero(fix.Latitude) || !isFiniteNonZero(fix.Longitude) {
		return ErrInvalidCoordinate
	}
	if fix.Latitude < -90 || fix.Latitude > 90 || fix.Longitude < -180 || fix.Longitude > 180 {
		return ErrInvalidCoordinate
	}

	for _, pair := range sentinelPairs {
		if math.Abs(fix.Latitude-pair[0]) < sentinelEpsilon && math.Abs(fix.Longitude-pair[1]) < sentinelEpsilon {
			return ErrSentinelCoordinate
		}
	}
	return nil
}

func isFiniteNonZero(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v != 0
}
