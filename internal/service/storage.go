package service

import (
	"context"
	"strings"

	"plantdiary/internal/kv"
	"plantdiary/internal/models"
	"plantdiary/internal/storage"
)

// StorageService reports store usage and maintains the stored data.
type StorageService interface {
	Info(ctx context.Context) (kv.Info, error)
	// Cleanup drops records and reminders whose plant no longer exists.
	Cleanup(ctx context.Context) (storage.CleanupResult, error)
	UserInfo(ctx context.Context) (models.UserInfo, error)
	SetUserInfo(ctx context.Context, info models.UserInfo) (models.UserInfo, error)
}

type storageService struct {
	repos *storage.Repos
}

// NewStorageService creates a new StorageService.
func NewStorageService(repos *storage.Repos) StorageService {
	return &storageService{repos: repos}
}

func (s *storageService) Info(ctx context.Context) (kv.Info, error) {
	info, err := s.repos.Store().Info()
	if err != nil {
		return kv.Info{}, WrapError(err, "get storage info")
	}
	return info, nil
}

func (s *storageService) Cleanup(ctx context.Context) (storage.CleanupResult, error) {
	result, err := s.repos.CleanupOrphans()
	if err != nil {
		loggerFrom(ctx).ErrorContext(ctx, "cleanup failed", "error", err)
		return result, WrapError(err, "cleanup")
	}
	return result, nil
}

func (s *storageService) UserInfo(ctx context.Context) (models.UserInfo, error) {
	return s.repos.State.UserInfo(), nil
}

func (s *storageService) SetUserInfo(ctx context.Context, info models.UserInfo) (models.UserInfo, error) {
	info.Nickname = strings.TrimSpace(info.Nickname)
	if info.Nickname == "" {
		return models.UserInfo{}, &ValidationError{Field: "nickname", Message: "cannot be empty"}
	}
	if err := s.repos.State.SetUserInfo(info); err != nil {
		return models.UserInfo{}, WrapError(err, "save user info")
	}
	return info, nil
}
