package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angkutin/tracking/internal/pkg/models"
)

func TestResolveTrackedParty(t *testing.T) {
	tests := []struct {
		name     string
		trip     *models.Trip
		expected string
		found    bool
	}{
		{
			name: "driver participant with accepted status",
			trip: &models.Trip{
				ID: "trip-1",
				Contracts: []models.Contract{{
					Participants: []models.Participant{
						{PartyID: "12", Role: "shipper", Status: models.ParticipantStatusActive},
						{PartyID: "7", Role: models.ParticipantRoleDriver, Status: models.ParticipantStatusAccepted},
					},
				}},
			},
			expected: "7",
			found:    true,
		},
		{
			name: "driver with inactive status is skipped",
			trip: &models.Trip{
				ID: "trip-1",
				Contracts: []models.Contract{{
					Participants: []models.Participant{
						{PartyID: "7", Role: models.ParticipantRoleDriver, Status: "declined"},
					},
				}},
				AssignedPartyID: "9",
			},
			expected: "9",
			found:    true,
		},
		{
			name: "falls back to assigned party",
			trip: &models.Trip{
				ID:              "trip-1",
				AssignedPartyID: "42",
			},
			expected: "42",
			found:    true,
		},
		{
			name:  "nothing resolvable",
			trip:  &models.Trip{ID: "trip-1"},
			found: false,
		},
		{
			name:  "nil trip",
			trip:  nil,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveTrackedParty(tt.trip)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestIsPartyMatch(t *testing.T) {
	tests := []struct {
		name        string
		eventID     string
		canonicalID string
		match       bool
	}{
		{"exact string", "7", "7", true},
		{"numeric string vs same number", "007", "7", true},
		{"prefixed id matches bare id", "driver-7", "7", true},
		{"bare id matches prefixed id", "7", "party-7", true},
		{"different numbers never match", "8", "7", false},
		{"prefixed different number", "driver-8", "7", false},
		{"empty event id", "", "7", false},
		{"empty canonical id", "7", "", false},
		{"non-numeric ids compare exactly", "abc", "abd", false},
		{"identical non-numeric ids", "abc", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, IsPartyMatch(tt.eventID, tt.canonicalID))
		})
	}
}
