package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"plantdiary/internal/models"
	"plantdiary/internal/service"
)

// PlantHandler handles HTTP requests for plants.
type PlantHandler struct {
	plants  service.PlantService
	records service.RecordService
}

// NewPlantHandler creates a new PlantHandler.
func NewPlantHandler(plants service.PlantService, records service.RecordService) *PlantHandler {
	return &PlantHandler{plants: plants, records: records}
}

// PlantRequest is the body of a create request.
type PlantRequest struct {
	Name        string           `json:"name"`
	Type        models.PlantType `json:"type"`
	PlantDate   string           `json:"plantDate"`
	Status      models.Status    `json:"status"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
}

// List handles GET /api/plants?q=&page=.
func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = n
	}

	result, err := h.plants.List(ctx, service.PlantQuery{Keyword: r.URL.Query().Get("q"), Page: page})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list plants")
		return
	}
	writeJSON(w, ctx, http.StatusOK, result)
}

// Create handles POST /api/plants.
func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.plants.Create(ctx, models.Plant{
		Name:        req.Name,
		Type:        req.Type,
		PlantDate:   req.PlantDate,
		Status:      req.Status,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create plant")
		return
	}
	writeJSON(w, ctx, http.StatusCreated, created)
}

// Get handles GET /api/plants/{id}.
func (h *PlantHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	detail, err := h.plants.Detail(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get plant")
		return
	}
	writeJSON(w, ctx, http.StatusOK, detail)
}

// Update handles PATCH /api/plants/{id}.
func (h *PlantHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch models.PlantPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.plants.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update plant")
		return
	}
	writeJSON(w, ctx, http.StatusOK, updated)
}

// Delete handles DELETE /api/plants/{id}. Records and reminders of the plant go with it.
func (h *PlantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.plants.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete plant")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Records handles GET /api/plants/{id}/records.
func (h *PlantHandler) Records(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.records.ListByPlant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list records")
		return
	}
	writeJSON(w, ctx, http.StatusOK, records)
}
