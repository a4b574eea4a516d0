package shipment

import (
	"sync"

	"service/internal/entities"
)

// statusCache memoizes resolutions keyed on booking id and viewer branch.
// It holds derived values only, so dropping it is always safe; correctness
// depends on Invalidate being called after every collection write.
type statusCache struct {
	mu      sync.RWMutex
	entries map[string]Resolution
}

func newStatusCache() *statusCache {
	return &statusCache{
		entries: make(map[string]Resolution),
	}
}

func (c *statusCache) resolve(booking entities.Booking, snap *Snapshot, viewerBranchID string) Resolution {
	key := booking.ID + "|" + viewerBranchID

	c.mu.RLock()
	resolution, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return resolution
	}

	resolution = Resolve(booking, snap, viewerBranchID)

	c.mu.Lock()
	c.entries[key] = resolution
	c.mu.Unlock()

	return resolution
}

func (c *statusCache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]Resolution)
	c.mu.Unlock()
}
