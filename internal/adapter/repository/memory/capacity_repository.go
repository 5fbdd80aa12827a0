package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

// CapacityRepository keeps venue counters in process memory. The guard and
// the write for a venue commit under one lock, giving the same conditional
// update semantics as the postgres adapter. Useful for tests and for hosts
// running without a database, where an empty map is simply first run.
type CapacityRepository struct {
	mu     sync.Mutex
	venues map[uuid.UUID]*domain.VenueCapacity
}

func NewCapacityRepository() *CapacityRepository {
	return &CapacityRepository{venues: make(map[uuid.UUID]*domain.VenueCapacity)}
}

func (r *CapacityRepository) Get(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.venues[venueID]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}

	snap := *v
	return &snap, nil
}

func (r *CapacityRepository) TryIncrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.venues[venueID]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	if v.Current >= v.Maximum {
		return nil, domain.ErrCapacityExceeded
	}

	v.Current++
	v.UpdatedAt = time.Now()

	snap := *v
	return &snap, nil
}

func (r *CapacityRepository) TryDecrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.venues[venueID]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	if v.Current <= 0 {
		return nil, domain.ErrAlreadyEmpty
	}

	v.Current--
	v.UpdatedAt = time.Now()

	snap := *v
	return &snap, nil
}

func (r *CapacityRepository) SetMaximum(ctx context.Context, venueID uuid.UUID, maximum int, force bool) (*domain.VenueCapacity, error) {
	if maximum <= 0 {
		return nil, domain.ErrInvalidMaximum
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.venues[venueID]
	if !ok {
		v = &domain.VenueCapacity{VenueID: venueID}
		r.venues[venueID] = v
	}

	if v.Current > maximum {
		if !force {
			return nil, domain.ErrMaximumBelowCurrent
		}
		v.Current = maximum
	}

	v.Maximum = maximum
	v.UpdatedAt = time.Now()

	snap := *v
	return &snap, nil
}
