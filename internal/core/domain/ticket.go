package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketValid    TicketStatus = "VALID"
	TicketUsed     TicketStatus = "USED"
	TicketRefunded TicketStatus = "REFUNDED"
)

type Ticket struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	UserID      uuid.UUID
	EventID     uuid.UUID
	VenueID     uuid.UUID
	Code        string
	Price       decimal.Decimal
	Status      TicketStatus
	CheckedInAt *time.Time
	CreatedAt   time.Time
}

func (t *Ticket) IsRedeemable() bool {
	return t.Status == TicketValid
}

type OrderStatus string

const (
	OrderPaid     OrderStatus = "PAID"
	OrderRefunded OrderStatus = "REFUNDED"
)

// Order groups the tickets created in a single purchase. It is immutable once
// created except for Status, which mirrors its tickets in aggregate.
type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EventID     uuid.UUID
	VenueID     uuid.UUID
	TotalAmount decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time
	Tickets     []Ticket
}
