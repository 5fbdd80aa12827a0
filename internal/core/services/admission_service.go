package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports"
	"venuegate/internal/monitoring"
)

// AdmissionService applies domain policy on top of the capacity store: store
// rejections become structured results instead of errors, and crossing a crowd
// level boundary emits a transition event for observers. The event is a side
// effect, never a correctness requirement.
type AdmissionService struct {
	capacity ports.CapacityStore
	notifier ports.CrowdNotifier
	monitor  *monitoring.Monitor
}

func NewAdmissionService(capacity ports.CapacityStore, notifier ports.CrowdNotifier, monitor *monitoring.Monitor) *AdmissionService {
	return &AdmissionService{
		capacity: capacity,
		notifier: notifier,
		monitor:  monitor,
	}
}

func (s *AdmissionService) CheckIn(ctx context.Context, venueID uuid.UUID, actor string) (*domain.AdmissionResult, error) {
	snap, err := s.capacity.Increment(ctx, venueID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCapacityExceeded):
			s.monitor.TrackAdmission("check_in", venueID.String(), "venue_full")
			return s.rejection(ctx, venueID, domain.AdmissionVenueFull)
		case errors.Is(err, domain.ErrVenueNotFound):
			s.monitor.TrackAdmission("check_in", venueID.String(), "venue_not_found")
			return &domain.AdmissionResult{Outcome: domain.AdmissionVenueUnknown}, nil
		default:
			return nil, err
		}
	}

	log.Printf("check-in: venue %s by %s, now %d/%d", venueID, actor, snap.Current, snap.Maximum)
	s.monitor.TrackAdmission("check_in", venueID.String(), "admitted")
	s.notifyTransition(ctx, snap, snap.Current-1)

	return &domain.AdmissionResult{
		Outcome:    domain.AdmissionAdmitted,
		Capacity:   snap,
		CrowdLevel: snap.CrowdLevel(),
	}, nil
}

func (s *AdmissionService) CheckOut(ctx context.Context, venueID uuid.UUID, actor string) (*domain.AdmissionResult, error) {
	snap, err := s.capacity.Decrement(ctx, venueID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyEmpty):
			s.monitor.TrackAdmission("check_out", venueID.String(), "venue_empty")
			return s.rejection(ctx, venueID, domain.AdmissionVenueEmpty)
		case errors.Is(err, domain.ErrVenueNotFound):
			s.monitor.TrackAdmission("check_out", venueID.String(), "venue_not_found")
			return &domain.AdmissionResult{Outcome: domain.AdmissionVenueUnknown}, nil
		default:
			return nil, err
		}
	}

	log.Printf("check-out: venue %s by %s, now %d/%d", venueID, actor, snap.Current, snap.Maximum)
	s.monitor.TrackAdmission("check_out", venueID.String(), "checked_out")
	s.notifyTransition(ctx, snap, snap.Current+1)

	return &domain.AdmissionResult{
		Outcome:    domain.AdmissionCheckedOut,
		Capacity:   snap,
		CrowdLevel: snap.CrowdLevel(),
	}, nil
}

// rejection attaches the unchanged snapshot so callers can show how full the
// venue actually is.
func (s *AdmissionService) rejection(ctx context.Context, venueID uuid.UUID, outcome domain.AdmissionOutcome) (*domain.AdmissionResult, error) {
	snap, err := s.capacity.Get(ctx, venueID)
	if err != nil {
		return &domain.AdmissionResult{Outcome: outcome}, nil
	}
	return &domain.AdmissionResult{
		Outcome:    outcome,
		Capacity:   snap,
		CrowdLevel: snap.CrowdLevel(),
	}, nil
}

// notifyTransition publishes a crowd level event when the committed mutation
// crossed a boundary. The previous count is derived from the same committed
// snapshot, so no extra read can race it.
func (s *AdmissionService) notifyTransition(ctx context.Context, snap *domain.VenueCapacity, previousCurrent int) {
	from := domain.CrowdLevelFor(previousCurrent, snap.Maximum)
	to := snap.CrowdLevel()
	if from == to {
		return
	}

	s.monitor.TrackCrowdTransition(snap.VenueID.String(), string(to))

	if s.notifier == nil {
		return
	}

	transition := domain.CrowdTransition{
		VenueID: snap.VenueID,
		From:    from,
		To:      to,
		Current: snap.Current,
		Maximum: snap.Maximum,
		At:      snap.UpdatedAt,
	}

	if err := s.notifier.PublishCrowdTransition(ctx, transition); err != nil {
		log.Printf("crowd transition publish failed for venue %s: %v", snap.VenueID, err)
	}
}
