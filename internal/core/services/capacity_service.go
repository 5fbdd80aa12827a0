package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports"
	"venuegate/internal/monitoring"
)

const defaultCapacityCacheTTL = 5 * time.Second

// CapacityService is the authoritative owner of venue occupancy counters.
// All mutation goes through the repository's conditional updates; the service
// adds a short-lived Redis snapshot cache for reads and invalidates it on
// every committed mutation.
type CapacityService struct {
	repo     ports.CapacityRepository
	redis    *redis.Client
	monitor  *monitoring.Monitor
	cacheTTL time.Duration
}

func NewCapacityService(repo ports.CapacityRepository, redisClient *redis.Client, monitor *monitoring.Monitor, cacheTTL time.Duration) *CapacityService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCapacityCacheTTL
	}
	return &CapacityService{
		repo:     repo,
		redis:    redisClient,
		monitor:  monitor,
		cacheTTL: cacheTTL,
	}
}

func capacityCacheKey(venueID uuid.UUID) string {
	return fmt.Sprintf("capacity:%s", venueID)
}

// Get returns a snapshot consistent with the latest committed mutation. It
// never fails with a domain error: a venue missing from the store reads as an
// empty snapshot, which is how a reset local store looks on first run.
func (s *CapacityService) Get(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	key := capacityCacheKey(venueID)

	if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
		var snap domain.VenueCapacity
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
	}

	snap, err := s.repo.Get(ctx, venueID)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return &domain.VenueCapacity{VenueID: venueID}, nil
		}
		return nil, err
	}

	if data, err := json.Marshal(snap); err == nil {
		// Best effort; a failed cache write only costs the next read a trip
		// to the repository.
		s.redis.Set(ctx, key, data, s.cacheTTL)
	}

	return snap, nil
}

// Increment admits one occupant iff current < maximum.
func (s *CapacityService) Increment(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	snap, err := s.repo.TryIncrement(ctx, venueID)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, snap)
	return snap, nil
}

// Decrement releases one occupant iff current > 0.
func (s *CapacityService) Decrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	snap, err := s.repo.TryDecrement(ctx, venueID)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, snap)
	return snap, nil
}

// SetMaximum registers or reconfigures a venue's capacity. Dropping maximum
// below the current count is refused unless force is set, in which case the
// count is clamped down to the new maximum.
func (s *CapacityService) SetMaximum(ctx context.Context, venueID uuid.UUID, maximum int, force bool) (*domain.VenueCapacity, error) {
	if maximum <= 0 {
		return nil, domain.ErrInvalidMaximum
	}

	snap, err := s.repo.SetMaximum(ctx, venueID, maximum, force)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, snap)
	return snap, nil
}

func (s *CapacityService) afterMutation(ctx context.Context, snap *domain.VenueCapacity) {
	s.redis.Del(ctx, capacityCacheKey(snap.VenueID))
	s.monitor.TrackOccupancy(snap.VenueID.String(), snap.Current, snap.Maximum)
}
