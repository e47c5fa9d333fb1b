package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"plantdiary/internal/models"
	"plantdiary/internal/service"
	"plantdiary/internal/timeutil"
)

// RecordHandler handles HTTP requests for care records.
type RecordHandler struct {
	records service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(records service.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// RecordRequest is the body of a create request. RecordTime accepts a number or a date string.
type RecordRequest struct {
	PlantID    string             `json:"plantId"`
	Type       models.RecordType  `json:"type"`
	RecordTime timeutil.Timestamp `json:"recordTime"`
	Notes      string             `json:"notes"`
	ImageURL   string             `json:"imageUrl"`
}

// Feed handles GET /api/records?type=.
func (h *RecordHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed, err := h.records.Feed(ctx, models.RecordType(r.URL.Query().Get("type")))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list records")
		return
	}
	writeJSON(w, ctx, http.StatusOK, feed)
}

// Create handles POST /api/records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.records.Create(ctx, models.Record{
		PlantID:    req.PlantID,
		Type:       req.Type,
		RecordTime: req.RecordTime,
		Notes:      req.Notes,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create record")
		return
	}
	writeJSON(w, ctx, http.StatusCreated, created)
}

// Get handles GET /api/records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	detail, err := h.records.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get record")
		return
	}
	writeJSON(w, ctx, http.StatusOK, detail)
}

// Update handles PATCH /api/records/{id}.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch models.RecordPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.records.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update record")
		return
	}
	writeJSON(w, ctx, http.StatusOK, updated)
}

// Delete handles DELETE /api/records/{id}.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.records.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
