package usecase

import (
	"sync"

	"github.com/angkutin/tracking/internal/pkg/models"
)

// LocationCache is the last-known-good fix store per tracked party.
// Writes are monotonic by fix timestamp: an older or equal fix never
// replaces the current slot. A GPS dropout never clears the store, so
// a tracked marker cannot silently reset to a fallback position.
type LocationCache struct {
	mu        sync.RWMutex
	current   map[string]models.LocationFix
	lastKnown map[string]models.LocationFix
}

// NewLocationCache creates an empty cache
func NewLocationCache() *LocationCache {
	return &LocationCache{
		current:   make(map[string]models.LocationFix),
		lastKnown: make(map[string]models.LocationFix),
	}
}

// Update stores a fix for a party. Returns true when the fix became
// the party's current position. Concurrent deliveries of the same
// party's position resolve by last-timestamp-wins, never by arrival
// order.
func (c *LocationCache) Update(partyID string, fix models.LocationFix) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, exists := c.current[partyID]
	if exists && fix.Timestamp <= cur.Timestamp {
		// Stale for the current slot. Still refresh last-known when
		// it lags behind.
		if last, ok := c.lastKnown[partyID]; !ok || fix.Timestamp > last.Timestamp {
			c.lastKnown[partyID] = fix
		}
		return false
	}

	c.current[partyID] = fix
	c.lastKnown[partyID] = fix
	return true
}

// Get returns the party's current fix, falling back to the last known
// one. ok is false only when no real fix has ever been received.
func (c *LocationCache) Get(partyID string) (models.LocationFix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if fix, ok := c.current[partyID]; ok {
		return fix, true
	}
	if fix, ok := c.lastKnown[partyID]; ok {
		return fix, true
	}
	return models.LocationFix{}, false
}
