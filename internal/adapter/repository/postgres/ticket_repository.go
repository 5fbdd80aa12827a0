package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateOrder inserts the order header and all of its tickets in one
// transaction; a partial order is never visible.
func (r *TicketRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO orders (id, user_id, event_id, venue_id, total_amount, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, queryHeader, order.ID, order.UserID, order.EventID, order.VenueID, order.TotalAmount, order.Status, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order header: %w", err)
	}

	queryTicket := `
	INSERT INTO tickets (id, order_id, user_id, event_id, venue_id, code, price, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	stmt, err := tx.PrepareContext(ctx, queryTicket)
	if err != nil {
		return fmt.Errorf("failed to prepare ticket statement: %w", err)
	}

	defer stmt.Close()

	for _, t := range order.Tickets {
		_, err := stmt.ExecContext(ctx, t.ID, t.OrderID, t.UserID, t.EventID, t.VenueID, t.Code, t.Price, t.Status, t.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert ticket %s: %w", t.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	query := `
	SELECT id, order_id, user_id, event_id, venue_id, code, price, status, checked_in_at, created_at
	FROM tickets
	WHERE id = $1
	`

	return r.scanTicket(r.db.QueryRowContext(ctx, query, ticketID))
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	query := `
	SELECT id, order_id, user_id, event_id, venue_id, code, price, status, checked_in_at, created_at
	FROM tickets
	WHERE code = $1
	`

	return r.scanTicket(r.db.QueryRowContext(ctx, query, code))
}

// MarkUsed is a conditional transition: the status guard and the write commit
// together, so a concurrent duplicate scan loses cleanly instead of
// re-applying.
func (r *TicketRepository) MarkUsed(ctx context.Context, ticketID uuid.UUID, at time.Time) (*domain.Ticket, error) {
	query := `
	UPDATE tickets
	SET status = $1, checked_in_at = $2
	WHERE id = $3 AND status = $4
	RETURNING id, order_id, user_id, event_id, venue_id, code, price, status, checked_in_at, created_at
	`

	ticket, err := r.scanTicket(r.db.QueryRowContext(ctx, query, domain.TicketUsed, at, ticketID, domain.TicketValid))
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return nil, r.classifyLostTransition(ctx, ticketID)
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepository) MarkRefunded(ctx context.Context, ticketID uuid.UUID) (*domain.Ticket, error) {
	query := `
	UPDATE tickets
	SET status = $1
	WHERE id = $2 AND status = $3
	RETURNING id, order_id, user_id, event_id, venue_id, code, price, status, checked_in_at, created_at
	`

	ticket, err := r.scanTicket(r.db.QueryRowContext(ctx, query, domain.TicketRefunded, ticketID, domain.TicketValid))
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return nil, r.classifyLostTransition(ctx, ticketID)
		}
		return nil, err
	}

	return ticket, nil
}

// UpdateOrderStatus marks the order refunded only once no ticket on it
// remains unrefunded.
func (r *TicketRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	query := `
	UPDATE orders
	SET status = $1
	WHERE id = $2
	  AND NOT EXISTS (
		SELECT 1 FROM tickets
		WHERE tickets.order_id = orders.id AND tickets.status <> $3
	  )
	`

	_, err := r.db.ExecContext(ctx, query, status, orderID, domain.TicketRefunded)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	return nil
}

func (r *TicketRepository) scanTicket(row *sql.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	var checkedInAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.OrderID,
		&t.UserID,
		&t.EventID,
		&t.VenueID,
		&t.Code,
		&t.Price,
		&t.Status,
		&checkedInAt,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}

	if checkedInAt.Valid {
		t.CheckedInAt = &checkedInAt.Time
	}

	return &t, nil
}

// classifyLostTransition re-reads a ticket whose conditional update matched
// nothing, to report which terminal state won.
func (r *TicketRepository) classifyLostTransition(ctx context.Context, ticketID uuid.UUID) error {
	ticket, err := r.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}

	switch ticket.Status {
	case domain.TicketUsed:
		return domain.ErrTicketAlreadyUsed
	case domain.TicketRefunded:
		return domain.ErrTicketRefunded
	default:
		return fmt.Errorf("ticket %s in unexpected status %s", ticketID, ticket.Status)
	}
}
