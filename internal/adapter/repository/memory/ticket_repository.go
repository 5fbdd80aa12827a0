package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

// TicketRepository is the in-memory counterpart of the postgres ticket store,
// with the same conditional transition semantics.
type TicketRepository struct {
	mu      sync.Mutex
	tickets map[uuid.UUID]*domain.Ticket
	byCode  map[string]uuid.UUID
	orders  map[uuid.UUID]*domain.Order
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		tickets: make(map[uuid.UUID]*domain.Ticket),
		byCode:  make(map[string]uuid.UUID),
		orders:  make(map[uuid.UUID]*domain.Order),
	}
}

func (r *TicketRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	for _, t := range order.Tickets {
		if _, exists := r.byCode[t.Code]; exists {
			return fmt.Errorf("redemption code collision on order %s", order.ID)
		}
	}

	stored := *order
	stored.Tickets = append([]domain.Ticket(nil), order.Tickets...)
	r.orders[order.ID] = &stored

	for i := range stored.Tickets {
		t := stored.Tickets[i]
		r.tickets[t.ID] = &t
		r.byCode[t.Code] = t.ID
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[ticketID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}

	snap := *t
	return &snap, nil
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byCode[code]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}

	snap := *r.tickets[id]
	return &snap, nil
}

func (r *TicketRepository) MarkUsed(ctx context.Context, ticketID uuid.UUID, at time.Time) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[ticketID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}

	switch t.Status {
	case domain.TicketUsed:
		return nil, domain.ErrTicketAlreadyUsed
	case domain.TicketRefunded:
		return nil, domain.ErrTicketRefunded
	}

	t.Status = domain.TicketUsed
	checkedIn := at
	t.CheckedInAt = &checkedIn

	snap := *t
	return &snap, nil
}

func (r *TicketRepository) MarkRefunded(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[ticketID]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}

	switch t.Status {
	case domain.TicketUsed:
		return nil, domain.ErrTicketAlreadyUsed
	case domain.TicketRefunded:
		return nil, domain.ErrTicketRefunded
	}

	t.Status = domain.TicketRefunded

	snap := *t
	return &snap, nil
}

// UpdateOrderStatus applies REFUNDED only once every ticket on the order is
// refunded, mirroring the conditional update in the postgres adapter.
func (r *TicketRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s not found", orderID)
	}

	if status == domain.OrderRefunded {
		for _, t := range order.Tickets {
			stored := r.tickets[t.ID]
			if stored != nil && stored.Status != domain.TicketRefunded {
				return nil
			}
		}
	}

	order.Status = status
	return nil
}
