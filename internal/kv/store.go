package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Notifier surfaces a short user-visible message, the equivalent of a toast.
type Notifier interface {
	Notify(message string)
}

// LogNotifier writes notifications to a logger. It is the default when no UI is attached.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs message at warn level.
func (n LogNotifier) Notify(message string) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("user notification", "message", message)
}

// Store adapts a Backend to JSON-encoded values with the default-on-miss read contract.
type Store struct {
	backend  Backend
	notifier Notifier
	logger   *slog.Logger
}

// NewStore wraps backend. A nil notifier falls back to LogNotifier.
func NewStore(backend Backend, notifier Notifier) *Store {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Store{
		backend:  backend,
		notifier: notifier,
		logger:   slog.Default(),
	}
}

// Get decodes the value under key into a T. It returns def when the key is absent,
// the backend read fails, or the stored blob does not decode. It never fails.
func Get[T any](s *Store, key string, def T) T {
	raw, err := s.backend.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Error("storage get error", "key", key, "error", err)
		}
		return def
	}
	if len(raw) == 0 {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Error("storage decode error", "key", key, "error", err)
		return def
	}
	return value
}

// Set encodes value and writes it under key. On failure the user is notified and the
// returned error wraps ErrPersistence; whatever the backend kept stays in place.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("storage encode error", "key", key, "error", err)
		s.notifier.Notify("Failed to save data")
		return fmt.Errorf("encode %q: %w", key, errors.Join(ErrPersistence, err))
	}

	if err := s.backend.Set(key, raw); err != nil {
		s.logger.Error("storage set error", "key", key, "error", err)
		s.notifier.Notify("Failed to save data")
		return fmt.Errorf("set %q: %w", key, errors.Join(ErrPersistence, err))
	}

	s.logger.Debug("storage set", "key", key, "bytes", len(raw))
	return nil
}

// Remove deletes key.
func (s *Store) Remove(key string) error {
	if err := s.backend.Remove(key); err != nil {
		s.logger.Error("storage remove error", "key", key, "error", err)
		return fmt.Errorf("remove %q: %w", key, errors.Join(ErrPersistence, err))
	}
	return nil
}

// Clear deletes every key.
func (s *Store) Clear() error {
	if err := s.backend.Clear(); err != nil {
		s.logger.Error("storage clear error", "error", err)
		return fmt.Errorf("clear: %w", errors.Join(ErrPersistence, err))
	}
	return nil
}

// Info reports storage usage.
func (s *Store) Info() (Info, error) {
	info, err := s.backend.Info()
	if err != nil {
		s.logger.Error("get storage info error", "error", err)
		return Info{}, err
	}
	return info, nil
}
