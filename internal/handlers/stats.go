package handlers

import (
	"net/http"
	"strconv"
	"time"

	"plantdiary/internal/service"
)

// StatsHandler handles HTTP requests for the statistics dashboards.
type StatsHandler struct {
	stats service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// intParam reads an optional integer query parameter. Absent means zero.
func intParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Overview handles GET /api/stats/overview.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summary, err := h.stats.Overview(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute overview")
		return
	}
	writeJSON(w, ctx, http.StatusOK, summary)
}

// Types handles GET /api/stats/types.
func (h *StatsHandler) Types(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	types, err := h.stats.Types(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute type distribution")
		return
	}
	writeJSON(w, ctx, http.StatusOK, types)
}

// Trend handles GET /api/stats/trend?days=.
func (h *StatsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	days, ok := intParam(r, "days")
	if !ok {
		writeError(w, http.StatusBadRequest, "days must be an integer")
		return
	}
	points, err := h.stats.DailyTrend(ctx, days)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute trend")
		return
	}
	writeJSON(w, ctx, http.StatusOK, points)
}

// Monthly handles GET /api/stats/monthly?months=.
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	months, ok := intParam(r, "months")
	if !ok {
		writeError(w, http.StatusBadRequest, "months must be an integer")
		return
	}
	points, err := h.stats.MonthlyTrend(ctx, months)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute monthly trend")
		return
	}
	writeJSON(w, ctx, http.StatusOK, points)
}

// Heatmap handles GET /api/stats/heatmap?year=&month=.
func (h *StatsHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	year, okYear := intParam(r, "year")
	month, okMonth := intParam(r, "month")
	if !okYear || !okMonth {
		writeError(w, http.StatusBadRequest, "year and month must be integers")
		return
	}
	cal, err := h.stats.Heatmap(ctx, year, time.Month(month))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute heatmap")
		return
	}
	writeJSON(w, ctx, http.StatusOK, cal)
}

// Status handles GET /api/stats/status.
func (h *StatsHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts, err := h.stats.Status(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute status distribution")
		return
	}
	writeJSON(w, ctx, http.StatusOK, counts)
}

// Activity handles GET /api/stats/activity.
func (h *StatsHandler) Activity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ranking, err := h.stats.Activity(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute activity ranking")
		return
	}
	writeJSON(w, ctx, http.StatusOK, ranking)
}
