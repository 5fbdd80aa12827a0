package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports"
	"venuegate/internal/monitoring"
)

const gateActor = "redemption-gate"

// RedemptionService is the gate a scanned code passes through:
// validate -> admit -> mark used. It coordinates the ticket ledger and the
// admission service but owns neither; every status write stays with them.
//
// Ordering matters. The admission increment happens before the ticket is
// marked, and a mark lost to a concurrent scan of the same code rolls the
// increment back with a compensating check-out. Capacity exhaustion, on the
// other hand, never consumes a ticket.
type RedemptionService struct {
	tickets   ports.TicketLedger
	admission ports.AdmissionControl
	monitor   *monitoring.Monitor
}

func NewRedemptionService(tickets ports.TicketLedger, admission ports.AdmissionControl, monitor *monitoring.Monitor) *RedemptionService {
	return &RedemptionService{
		tickets:   tickets,
		admission: admission,
		monitor:   monitor,
	}
}

func (s *RedemptionService) Redeem(ctx context.Context, code string) (*domain.RedemptionResult, error) {
	ticket, err := s.tickets.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			s.monitor.TrackRedemption("ticket_not_found")
			return &domain.RedemptionResult{Outcome: domain.RedemptionNotFound}, nil
		}
		return nil, err
	}

	// Fast rejection for tickets already settled. The conditional MarkUsed
	// below is what makes the decision race-safe; this only avoids a
	// pointless admission round trip.
	switch ticket.Status {
	case domain.TicketUsed:
		s.monitor.TrackRedemption("already_used")
		return &domain.RedemptionResult{Outcome: domain.RedemptionAlreadyUsed, Ticket: ticket}, nil
	case domain.TicketRefunded:
		s.monitor.TrackRedemption("refunded")
		return &domain.RedemptionResult{Outcome: domain.RedemptionRefunded, Ticket: ticket}, nil
	}

	adm, err := s.admission.CheckIn(ctx, ticket.VenueID, gateActor)
	if err != nil {
		return nil, err
	}

	switch adm.Outcome {
	case domain.AdmissionAdmitted:
	case domain.AdmissionVenueFull:
		// The ticket stays VALID: its holder may enter later or via a
		// manual override.
		s.monitor.TrackRedemption("venue_full")
		return &domain.RedemptionResult{
			Outcome:  domain.RedemptionVenueFull,
			Ticket:   ticket,
			Capacity: adm.Capacity,
		}, nil
	default:
		return nil, fmt.Errorf("check-in unavailable for venue %s: %s", ticket.VenueID, adm.Outcome)
	}

	used, err := s.tickets.MarkUsed(ctx, ticket.ID, time.Now())
	if err != nil {
		// Another scan of the same code won the mark while our admission
		// was in flight. Undo the increment before reporting, otherwise the
		// duplicate scan corrupts the counter.
		s.compensate(ctx, ticket.VenueID)

		switch {
		case errors.Is(err, domain.ErrTicketAlreadyUsed):
			s.monitor.TrackRedemption("already_used")
			return &domain.RedemptionResult{Outcome: domain.RedemptionAlreadyUsed, Ticket: ticket}, nil
		case errors.Is(err, domain.ErrTicketRefunded):
			s.monitor.TrackRedemption("refunded")
			return &domain.RedemptionResult{Outcome: domain.RedemptionRefunded, Ticket: ticket}, nil
		default:
			return nil, err
		}
	}

	s.monitor.TrackRedemption("admitted")
	return &domain.RedemptionResult{
		Outcome:  domain.RedemptionAdmitted,
		Ticket:   used,
		Capacity: adm.Capacity,
	}, nil
}

func (s *RedemptionService) compensate(ctx context.Context, venueID uuid.UUID) {
	if _, err := s.admission.CheckOut(ctx, venueID, gateActor); err != nil {
		log.Printf("failed to roll back admission for venue %s, counter may read high until next sync: %v", venueID, err)
	}
}
