package handlers

import (
	"net/http"

	"plantdiary/internal/service"
)

// SyncHandler handles HTTP requests for the sync state.
type SyncHandler struct {
	sync service.SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(sync service.SyncService) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// Status handles GET /api/sync.
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status, err := h.sync.Status(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get sync status")
		return
	}
	writeJSON(w, ctx, http.StatusOK, status)
}

// Sync handles POST /api/sync.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.sync.Sync(ctx); err != nil {
		handleServiceError(w, ctx, err, "Failed to sync")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
