package ports

import (
	"context"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

// CapacityFetcher pulls the authoritative capacity record for a venue from the
// remote source of truth. A timed-out fetch returns domain.ErrFetchTimeout;
// it is never mapped to an implicit capacity value.
type CapacityFetcher interface {
	Fetch(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error)
}

// CapacityMirror is a read-only local view of remote capacity, refreshed by
// the poller. Replace swaps the whole snapshot; partial merges would allow
// torn reads.
type CapacityMirror interface {
	Replace(snapshot domain.VenueCapacity)
	Snapshot(venueID uuid.UUID) (domain.VenueCapacity, bool)
}

// CrowdNotifier delivers crowd-level transition events to interested
// observers. Delivery is best effort and never affects counter correctness.
type CrowdNotifier interface {
	PublishCrowdTransition(ctx context.Context, transition domain.CrowdTransition) error
}
