package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"plantdiary/internal/contextutil"
	"plantdiary/internal/service"
)

// degradedUsagePercent is the store usage above which health reports degraded.
const degradedUsagePercent = 90

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	storage service.StorageService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(storage service.StorageService) *HealthHandler {
	return &HealthHandler{storage: storage}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK when the store is readable, also when it is nearly full (degraded),
// and 503 Service Unavailable when the store cannot be read.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	var issues []string
	status := "healthy"
	httpStatus := http.StatusOK

	switch usage, ok := h.checkStore(r, logger); {
	case !ok:
		checks["store"] = "error"
		issues = append(issues, "store_unavailable")
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case usage >= degradedUsagePercent:
		checks["store"] = fmt.Sprintf("%.2f%% used", usage)
		issues = append(issues, "store_nearly_full")
		status = "degraded"
	default:
		checks["store"] = "ok"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}

// checkStore reads the store usage. ok is false when the store cannot be read.
func (h *HealthHandler) checkStore(r *http.Request, logger *slog.Logger) (usage float64, ok bool) {
	info, err := h.storage.Info(r.Context())
	if err != nil {
		logger.WarnContext(r.Context(), "store health check failed", "error", err)
		return 0, false
	}
	return info.UsagePercent, true
}
