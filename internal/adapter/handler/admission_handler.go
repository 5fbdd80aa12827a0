package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"venuegate/internal/core/domain"
	"venuegate/internal/core/ports"
)

type AdmissionHandler struct {
	admission ports.AdmissionControl
	capacity  ports.CapacityStore
}

func NewAdmissionHandler(admission ports.AdmissionControl, capacity ports.CapacityStore) *AdmissionHandler {
	return &AdmissionHandler{admission: admission, capacity: capacity}
}

type admissionRequest struct {
	VenueID string `json:"venue_id"`
	Actor   string `json:"actor"`
}

func (h *AdmissionHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.admit(w, r, h.admission.CheckIn)
}

func (h *AdmissionHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.admit(w, r, h.admission.CheckOut)
}

func (h *AdmissionHandler) admit(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, venueID uuid.UUID, actor string) (*domain.AdmissionResult, error)) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req admissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid venue id")
		return
	}

	result, err := op(r.Context(), venueID, req.Actor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(admissionStatus(result.Outcome))
	json.NewEncoder(w).Encode(result)
}

func admissionStatus(outcome domain.AdmissionOutcome) int {
	switch outcome {
	case domain.AdmissionAdmitted, domain.AdmissionCheckedOut:
		return http.StatusOK
	case domain.AdmissionVenueUnknown:
		return http.StatusNotFound
	default:
		return http.StatusConflict
	}
}

func (h *AdmissionHandler) GetCapacity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	venueID, err := uuid.Parse(r.URL.Query().Get("venue_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid venue id")
		return
	}

	snap, err := h.capacity.Get(r.Context(), venueID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	json.NewEncoder(w).Encode(capacityResponse(snap))
}

type setMaximumRequest struct {
	VenueID string `json:"venue_id"`
	Maximum int    `json:"maximum"`
	Force   bool   `json:"force"`
}

func (h *AdmissionHandler) SetMaximum(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req setMaximumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid venue id")
		return
	}

	snap, err := h.capacity.SetMaximum(r.Context(), venueID, req.Maximum, req.Force)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMaximum):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrMaximumBelowCurrent):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	json.NewEncoder(w).Encode(capacityResponse(snap))
}

func capacityResponse(snap *domain.VenueCapacity) map[string]any {
	return map[string]any{
		"venue_id":    snap.VenueID.String(),
		"current":     snap.Current,
		"maximum":     snap.Maximum,
		"crowd_level": snap.CrowdLevel(),
		"updated_at":  snap.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
