package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"venuegate/internal/core/domain"
)

// CapacityStore is the authoritative owner of venue counters. Get never fails
// with a domain error: an unknown venue reads as an empty snapshot, which is
// how a reset local store looks on first run.
type CapacityStore interface {
	Get(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error)
	Increment(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error)
	Decrement(ctx context.Context, venueID uuid.UUID) (*domain.VenueCapacity, error)
	SetMaximum(ctx context.Context, venueID uuid.UUID, maximum int, force bool) (*domain.VenueCapacity, error)
}

// AdmissionControl is the policy layer over the capacity store: rejections
// come back as structured results, never as errors that crash a caller.
type AdmissionControl interface {
	CheckIn(ctx context.Context, venueID uuid.UUID, actor string) (*domain.AdmissionResult, error)
	CheckOut(ctx context.Context, venueID uuid.UUID, actor string) (*domain.AdmissionResult, error)
}

// TicketLedger owns ticket status transitions.
type TicketLedger interface {
	IssueTickets(ctx context.Context, orderID, userID, eventID, venueID uuid.UUID, count int, unitPrice decimal.Decimal) (*domain.Order, error)
	FindByCode(ctx context.Context, code string) (*domain.Ticket, error)
	MarkUsed(ctx context.Context, ticketID uuid.UUID, at time.Time) (*domain.Ticket, error)
	Refund(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error)
}
