package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"plantdiary/internal/models"
	"plantdiary/internal/service"
	"plantdiary/internal/timeutil"
)

// ReminderHandler handles HTTP requests for reminders.
type ReminderHandler struct {
	reminders service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminders service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

// ReminderRequest is the body of a create request.
type ReminderRequest struct {
	PlantID        string              `json:"plantId"`
	Type           models.ReminderType `json:"type"`
	Frequency      int                 `json:"frequency"`
	NextRemindTime *timeutil.Timestamp `json:"nextRemindTime"`
}

// List handles GET /api/reminders.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.reminders.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list reminders")
		return
	}
	writeJSON(w, ctx, http.StatusOK, list)
}

// Create handles POST /api/reminders.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.reminders.Create(ctx, models.Reminder{
		PlantID:        req.PlantID,
		Type:           req.Type,
		Frequency:      req.Frequency,
		NextRemindTime: req.NextRemindTime,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create reminder")
		return
	}
	writeJSON(w, ctx, http.StatusCreated, created)
}

// Update handles PATCH /api/reminders/{id}.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch models.ReminderPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.reminders.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update reminder")
		return
	}
	writeJSON(w, ctx, http.StatusOK, updated)
}

// Toggle handles POST /api/reminders/{id}/toggle.
func (h *ReminderHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	updated, err := h.reminders.Toggle(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to toggle reminder")
		return
	}
	writeJSON(w, ctx, http.StatusOK, updated)
}

// Delete handles DELETE /api/reminders/{id}.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.reminders.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete reminder")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
