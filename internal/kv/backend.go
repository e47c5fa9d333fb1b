package kv

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_backend.go -package=mocks plantdiary/internal/kv Backend

import (
	"errors"
	"math"
)

// Store keys. Each key holds one whole collection or singleton as a single JSON value.
const (
	KeyUserInfo     = "user_info"
	KeyPlants       = "plants"
	KeyRecords      = "records"
	KeyReminders    = "reminders"
	KeySyncState    = "sync_state"
	KeyOfflineQueue = "offline_queue"
)

var (
	// ErrKeyNotFound is returned by a Backend when the key has never been set.
	ErrKeyNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned when a write would push the store over its size limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrPersistence wraps every failed write surfaced by Store.
	ErrPersistence = errors.New("persistence failure")
)

// Backend is the synchronous host storage primitive.
// All values are whole blobs; there are no partial or range reads.
type Backend interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
	// Clear deletes every key.
	Clear() error
	// Info reports the keys and space currently in use.
	Info() (Info, error)
}

// Info describes storage usage.
type Info struct {
	Keys         []string `json:"keys"`
	CurrentSize  int64    `json:"currentSize"`
	LimitSize    int64    `json:"limitSize"`
	UsagePercent float64  `json:"usagePercent"`
}

// usagePercent rounds current/limit to two decimals. A zero limit means unlimited.
func usagePercent(current, limit int64) float64 {
	if limit <= 0 {
		return 0
	}
	p := float64(current) / float64(limit) * 100
	return math.Round(p*100) / 100
}
