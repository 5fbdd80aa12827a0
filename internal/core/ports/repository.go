package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

// CapacityRepository is the storage primitive for venue counters. Every
// mutating method is a single conditional update: the guard and the write
// commit together or not at all, so two writers can never both consume the
// last slot. Mutations on different venues do not block each other.
type CapacityRepository interface {
	// Get returns the latest committed snapshot, or domain.ErrVenueNotFound
	// for a venue that was never registered.
	Get(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error)

	// TryIncrement adds one occupant iff current < maximum and returns the
	// committed snapshot. Returns domain.ErrCapacityExceeded when full.
	TryIncrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error)

	// TryDecrement removes one occupant iff current > 0. Returns
	// domain.ErrAlreadyEmpty at zero.
	TryDecrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error)

	// SetMaximum registers or reconfigures a venue. Without force it refuses
	// to drop maximum below current (domain.ErrMaximumBelowCurrent); with
	// force it clamps current down to the new maximum.
	SetMaximum(ctx context.Context, venueID uuid.UUID, maximum int, force bool) (*domain.VenueCapacity, error)
}

type TicketRepository interface {
	// CreateOrder inserts the order and all of its tickets in one transaction.
	CreateOrder(ctx context.Context, order *domain.Order) error

	GetByID(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)

	// FindByCode resolves a redemption code, or domain.ErrTicketNotFound.
	FindByCode(ctx context.Context, code string) (*domain.Ticket, error)

	// MarkUsed transitions VALID -> USED with a conditional update. A lost
	// race reports domain.ErrTicketAlreadyUsed or domain.ErrTicketRefunded,
	// never a silent re-apply.
	MarkUsed(ctx context.Context, ticketID uuid.UUID, at time.Time) (*domain.Ticket, error)

	// MarkRefunded transitions VALID -> REFUNDED, same conditional semantics.
	MarkRefunded(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)

	// UpdateOrderStatus mirrors the aggregate ticket state onto the order.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
}
