package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports"
	"venuegate/internal/platform/random"
)

const redemptionCodeBytes = 16

// TicketService is the ledger of issued tickets. It exclusively owns ticket
// status transitions; the redemption gate coordinates with admission but all
// status writes land here.
type TicketService struct {
	repo ports.TicketRepository
}

func NewTicketService(repo ports.TicketRepository) *TicketService {
	return &TicketService{repo: repo}
}

// IssueTickets creates the order and one ticket per purchased unit, each with
// its own redemption code, committed in a single transaction.
func (s *TicketService) IssueTickets(ctx context.Context, orderID, userID, eventID, venueID uuid.UUID, count int, unitPrice decimal.Decimal) (*domain.Order, error) {
	if count <= 0 {
		return nil, errors.New("ticket count must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, errors.New("unit price must not be negative")
	}

	now := time.Now()
	order := &domain.Order{
		ID:          orderID,
		UserID:      userID,
		EventID:     eventID,
		VenueID:     venueID,
		TotalAmount: unitPrice.Mul(decimal.NewFromInt(int64(count))),
		Status:      domain.OrderPaid,
		CreatedAt:   now,
		Tickets:     make([]domain.Ticket, 0, count),
	}

	for i := 0; i < count; i++ {
		code, err := random.Code(redemptionCodeBytes)
		if err != nil {
			return nil, fmt.Errorf("generate redemption code: %w", err)
		}

		order.Tickets = append(order.Tickets, domain.Ticket{
			ID:        uuid.New(),
			OrderID:   orderID,
			UserID:    userID,
			EventID:   eventID,
			VenueID:   venueID,
			Code:      code,
			Price:     unitPrice,
			Status:    domain.TicketValid,
			CreatedAt: now,
		})
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func (s *TicketService) FindByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	return s.repo.FindByCode(ctx, code)
}

// MarkUsed performs the one-way VALID -> USED transition. Safe to call
// concurrently for the same ticket: the losing caller gets
// domain.ErrTicketAlreadyUsed, never a second application.
func (s *TicketService) MarkUsed(ctx context.Context, ticketID uuid.UUID, at time.Time) (*domain.Ticket, error) {
	return s.repo.MarkUsed(ctx, ticketID, at)
}

// Refund performs the VALID -> REFUNDED transition and refreshes the owning
// order's aggregate status.
func (s *TicketService) Refund(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	ticket, err := s.repo.MarkRefunded(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	// No-op unless every ticket on the order is refunded.
	if err := s.repo.UpdateOrderStatus(ctx, ticket.OrderID, domain.OrderRefunded); err != nil {
		return nil, fmt.Errorf("refresh order status: %w", err)
	}

	return ticket, nil
}
