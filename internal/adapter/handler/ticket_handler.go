package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports"
)

type TicketHandler struct {
	tickets ports.TicketLedger
	gate    Redeemer
}

// Redeemer is the gate surface the handler needs.
type Redeemer interface {
	Redeem(ctx context.Context, code string) (*domain.RedemptionResult, error)
}

func NewTicketHandler(tickets ports.TicketLedger, gate Redeemer) *TicketHandler {
	return &TicketHandler{tickets: tickets, gate: gate}
}

type issueTicketsRequest struct {
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	EventID   string          `json:"event_id"`
	VenueID   string          `json:"venue_id"`
	Count     int             `json:"count"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (h *TicketHandler) IssueTickets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req issueTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid venue id")
		return
	}

	order, err := h.tickets.IssueTickets(r.Context(), orderID, userID, eventID, venueID, req.Count, req.UnitPrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	codes := make([]string, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		codes = append(codes, t.Code)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"order_id":     order.ID.String(),
		"total_amount": order.TotalAmount,
		"status":       order.Status,
		"ticket_count": len(order.Tickets),
		"codes":        codes,
	})
}

type redeemRequest struct {
	Code string `json:"code"`
}

func (h *TicketHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.gate.Redeem(r.Context(), req.Code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(redemptionStatus(result.Outcome))
	json.NewEncoder(w).Encode(result)
}

func redemptionStatus(outcome domain.RedemptionOutcome) int {
	switch outcome {
	case domain.RedemptionAdmitted:
		return http.StatusOK
	case domain.RedemptionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusConflict
	}
}

type refundRequest struct {
	TicketID string `json:"ticket_id"`
}

func (h *TicketHandler) Refund(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	ticketID, err := uuid.Parse(req.TicketID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ticket, err := h.tickets.Refund(r.Context(), ticketID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTicketNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrTicketAlreadyUsed), errors.Is(err, domain.ErrTicketRefunded):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"ticket_id": ticket.ID.String(),
		"status":    ticket.Status,
	})
}
