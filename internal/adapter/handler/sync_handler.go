package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"venuegate/internal/core/ports"
	"venuegate/internal/core/services"
)

// SyncHandler drives the poller that keeps the local capacity mirror in step
// with the remote source of truth.
type SyncHandler struct {
	poller *services.CapacityPoller
	mirror ports.CapacityMirror

	// baseCtx outlives individual requests so a started poller is not
	// cancelled when the HTTP request that started it completes.
	baseCtx context.Context
}

func NewSyncHandler(baseCtx context.Context, poller *services.CapacityPoller, mirror ports.CapacityMirror) *SyncHandler {
	return &SyncHandler{poller: poller, mirror: mirror, baseCtx: baseCtx}
}

type startPollingRequest struct {
	VenueIDs   []string `json:"venue_ids"`
	IntervalMS int      `json:"interval_ms"`
}

func (h *SyncHandler) StartPolling(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req startPollingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.VenueIDs) == 0 {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	venueIDs := make([]uuid.UUID, 0, len(req.VenueIDs))
	for _, raw := range req.VenueIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid venue id")
			return
		}
		venueIDs = append(venueIDs, id)
	}

	interval := time.Duration(req.IntervalMS) * time.Millisecond
	h.poller.Start(h.baseCtx, interval, venueIDs...)

	json.NewEncoder(w).Encode(map[string]any{"polling": true, "venues": len(venueIDs)})
}

func (h *SyncHandler) StopPolling(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.poller.Stop()
	json.NewEncoder(w).Encode(map[string]any{"polling": false})
}

func (h *SyncHandler) Pause(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.poller.Pause()
	json.NewEncoder(w).Encode(map[string]any{"foreground": false})
}

func (h *SyncHandler) Resume(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.poller.Resume()
	json.NewEncoder(w).Encode(map[string]any{"foreground": true})
}

func (h *SyncHandler) GetMirror(w http.ResponseWriter, r *http.Request) {
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

	snap, ok := h.mirror.Snapshot(venueID)
	if !ok {
		writeError(w, http.StatusNotFound, "no mirrored snapshot")
		return
	}

	json.NewEncoder(w).Encode(capacityResponse(&snap))
}
