package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angkutin/tracking/internal/pkg/constants"
	"github.com/angkutin/tracking/internal/pkg/models"
)

func TestValidateFix(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		expected error
	}{
		{"valid jakarta fix", -6.2100, 106.8300, nil},
		{"valid southern hemisphere", -33.8688, 151.2093, nil},
		{"zero latitude", 0, 106.83, ErrInvalidCoordinate},
		{"zero longitude", -6.21, 0, ErrInvalidCoordinate},
		{"both zero", 0, 0, ErrInvalidCoordinate},
		{"NaN latitude", math.NaN(), 106.83, ErrInvalidCoordinate},
		{"infinite longitude", -6.21, math.Inf(1), ErrInvalidCoordinate},
		{"latitude out of range", 91, 106.83, ErrInvalidCoordinate},
		{"longitude out of range", -6.21, -181, ErrInvalidCoordinate},
		{"city center sentinel", constants.SentinelCityCenterLat, constants.SentinelCityCenterLng, ErrSentinelCoordinate},
		{"depot sentinel", constants.SentinelDepotLat, constants.SentinelDepotLng, ErrSentinelCoordinate},
		{"near sentinel but outside epsilon", constants.SentinelCityCenterLat + 0.001, constants.SentinelCityCenterLng, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFix(models.LocationFix{Latitude: tt.lat, Longitude: tt.lng, Timestamp: 1000})
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
