package handlers

import (
	"net/http"

	"plantdiary/internal/models"
	"plantdiary/internal/service"
)

// StorageHandler handles HTTP requests for storage maintenance and the user profile.
type StorageHandler struct {
	storage service.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(storage service.StorageService) *StorageHandler {
	return &StorageHandler{storage: storage}
}

// UserRequest is the body of a profile update.
type UserRequest struct {
	OpenID    string `json:"openid"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
}

// Info handles GET /api/storage.
func (h *StorageHandler) Info(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info, err := h.storage.Info(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get storage info")
		return
	}
	writeJSON(w, ctx, http.StatusOK, info)
}

// Cleanup handles POST /api/storage/cleanup.
func (h *StorageHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.storage.Cleanup(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to clean up storage")
		return
	}
	writeJSON(w, ctx, http.StatusOK, result)
}

// User handles GET /api/user.
func (h *StorageHandler) User(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info, err := h.storage.UserInfo(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get user info")
		return
	}
	writeJSON(w, ctx, http.StatusOK, info)
}

// SetUser handles PUT /api/user.
func (h *StorageHandler) SetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	current, err := h.storage.UserInfo(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get user info")
		return
	}
	saved, err := h.storage.SetUserInfo(ctx, models.UserInfo{
		OpenID:       req.OpenID,
		Nickname:     req.Nickname,
		AvatarURL:    req.AvatarURL,
		LastSyncTime: current.LastSyncTime,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save user info")
		return
	}
	writeJSON(w, ctx, http.StatusOK, saved)
}
