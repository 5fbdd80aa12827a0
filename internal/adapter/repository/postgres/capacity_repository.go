package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

// CapacityRepository persists venue counters in the venue_capacity table.
// Each mutation is one conditional UPDATE: the bound check and the write
// commit atomically, so concurrent writers can never both take the last slot.
// Rows are independent, so venues never block each other.
type CapacityRepository struct {
	db *sql.DB
}

func NewCapacityRepository(db *sql.DB) *CapacityRepository {
	return &CapacityRepository{db: db}
}

func (r *CapacityRepository) Get(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	query := `
	SELECT venue_id, current_count, max_capacity, updated_at
	FROM venue_capacity
	WHERE venue_id = $1
	`

	var snap domain.VenueCapacity
	err := r.db.QueryRowContext(ctx, query, venueID).Scan(
		&snap.VenueID,
		&snap.Current,
		&snap.Maximum,
		&snap.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue capacity: %w", err)
	}

	return &snap, nil
}

func (r *CapacityRepository) TryIncrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	query := `
	UPDATE venue_capacity
	SET current_count = current_count + 1,
		updated_at = NOW()
	WHERE venue_id = $1 AND current_count < max_capacity
	RETURNING venue_id, current_count, max_capacity, updated_at
	`

	snap, err := r.scanRow(ctx, query, venueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifyRejection(ctx, venueID, domain.ErrCapacityExceeded)
		}
		return nil, fmt.Errorf("increment venue %s: %w", venueID, err)
	}

	return snap, nil
}

func (r *CapacityRepository) TryDecrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error) {
	query := `
	UPDATE venue_capacity
	SET current_count = current_count - 1,
		updated_at = NOW()
	WHERE venue_id = $1 AND current_count > 0
	RETURNING venue_id, current_count, max_capacity, updated_at
	`

	snap, err := r.scanRow(ctx, query, venueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifyRejection(ctx, venueID, domain.ErrAlreadyEmpty)
		}
		return nil, fmt.Errorf("decrement venue %s: %w", venueID, err)
	}

	return snap, nil
}

func (r *CapacityRepository) SetMaximum(ctx context.Context, venueID uuid.UUID, maximum int, force bool) (*domain.VenueCapacity, error) {
	if maximum <= 0 {
		return nil, domain.ErrInvalidMaximum
	}

	var query string
	if force {
		query = `
	INSERT INTO venue_capacity (venue_id, current_count, max_capacity, updated_at)
	VALUES ($1, 0, $2, NOW())
	ON CONFLICT (venue_id) DO UPDATE
	SET max_capacity = EXCLUDED.max_capacity,
		current_count = LEAST(venue_capacity.current_count, EXCLUDED.max_capacity),
		updated_at = NOW()
	RETURNING venue_id, current_count, max_capacity, updated_at
	`
	} else {
		query = `
	INSERT INTO venue_capacity (venue_id, current_count, max_capacity, updated_at)
	VALUES ($1, 0, $2, NOW())
	ON CONFLICT (venue_id) DO UPDATE
	SET max_capacity = EXCLUDED.max_capacity,
		updated_at = NOW()
	WHERE venue_capacity.current_count <= EXCLUDED.max_capacity
	RETURNING venue_id, current_count, max_capacity, updated_at
	`
	}

	snap, err := r.scanRow(ctx, query, venueID, maximum)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMaximumBelowCurrent
		}
		return nil, fmt.Errorf("set maximum for venue %s: %w", venueID, err)
	}

	return snap, nil
}

func (r *CapacityRepository) scanRow(ctx context.Context, query string, args ...any) (*domain.VenueCapacity, error) {
	var snap domain.VenueCapacity
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&snap.VenueID,
		&snap.Current,
		&snap.Maximum,
		&snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// classifyRejection tells a guarded-out update apart from a missing venue.
func (r *CapacityRepository) classifyRejection(ctx context.Context, venueID uuid.UUID, guarded error) error {
	if _, err := r.Get(ctx, venueID); err != nil {
		return err
	}
	return guarded
}
