package service

import (
	"context"

	"plantdiary/internal/models"
	"plantdiary/internal/storage"
)

// SyncStatus is the stored sync bookkeeping with the queued operations.
type SyncStatus struct {
	State models.SyncState          `json:"state"`
	Queue []models.OfflineOperation `json:"queue"`
}

// SyncService exposes the sync state. There is no remote to sync with.
type SyncService interface {
	Status(ctx context.Context) (SyncStatus, error)
	// Sync always fails: ErrSyncInProgress when the state is marked syncing, else ErrSyncUnavailable.
	Sync(ctx context.Context) error
}

type syncService struct {
	repos *storage.Repos
}

// NewSyncService creates a new SyncService.
func NewSyncService(repos *storage.Repos) SyncService {
	return &syncService{repos: repos}
}

func (s *syncService) Status(ctx context.Context) (SyncStatus, error) {
	state := s.repos.State.SyncState()
	queue := s.repos.State.OfflineQueue()
	state.PendingCount = len(queue)
	return SyncStatus{State: state, Queue: queue}, nil
}

func (s *syncService) Sync(ctx context.Context) error {
	if s.repos.State.SyncState().IsSyncing {
		return ErrSyncInProgress
	}
	loggerFrom(ctx).InfoContext(ctx, "sync requested but no remote is configured")
	return ErrSyncUnavailable
}
