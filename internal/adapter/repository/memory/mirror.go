package memory

import (
	"sync"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

// CapacityMirror is the local read-only view of remote capacity kept fresh by
// the poller. Replace swaps whole snapshots; readers never observe a partial
// merge.
type CapacityMirror struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]domain.VenueCapacity
}

func NewCapacityMirror() *CapacityMirror {
	return &CapacityMirror{snapshots: make(map[uuid.UUID]domain.VenueCapacity)}
}

func (m *CapacityMirror) Replace(snapshot domain.VenueCapacity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snapshot.VenueID] = snapshot
}

func (m *CapacityMirror) Snapshot(venueID uuid.UUID) (domain.VenueCapacity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snapshots[venueID]
	return snap, ok
}
