package usecase

import (
	"strconv"
	"strings"

	"github.com/angkutin/tracking/internal/pkg/models"
)

// ResolveTrackedParty determines the authoritative tracked-party id
// for a trip. Priority: a contract participant with a driver role and
// an active/accepted/assigned status, then the trip's own assigned
// party field. Returns ok=false when neither source yields an id.
func ResolveTrackedParty(trip *models.Trip) (string, bool) {
	if trip == nil {
		return "", false
	}

	for _, contract := range trip.Contracts {
		for _, p := range contract.Participants {
			if p.Role != models.ParticipantRoleDriver {
				continue
			}
			switch p.Status {
			case models.ParticipantStatusActive,
				models.ParticipantStatusAccepted,
				models.ParticipantStatusAssigned:
				if p.PartyID != "" {
					return p.PartyID, true
				}
			}
		}
	}

	if trip.AssignedPartyID != "" {
		return trip.AssignedPartyID, true
	}
	return "", false
}

// stripIDPrefix drops any non-numeric textual prefix from an id, e.g.
// "driver-7" becomes "7". Returns the input unchanged when it carries
// no digits.
func stripIDPrefix(id string) string {
	idx := strings.IndexFunc(id, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if idx < 0 {
		return id
	}
	return id[idx:]
}

// IsPartyMatch reports whether an inbound event's party id refers to
// the canonical tracked-party id. Upstream producers are inconsistent
// about numeric vs prefixed-string identifiers, so both ids are
// normalized and compared as string and as number; any successful
// comparison is a match. Equality stays exact, there is no fuzzy
// matching.
func IsPartyMatch(eventPartyID, canonicalID string) bool {
	if eventPartyID == "" || canonicalID == "" {
		return false
	}
	if eventPartyID == canonicalID {
		return true
	}

	a := stripIDPrefix(eventPartyID)
	b := stripIDPrefix(canonicalID)
	if a == b {
		return true
	}

	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil && na == nb {
		return true
	}
	return false
}
