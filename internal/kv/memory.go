package kv

import (
	"sort"
	"sync"
)

// MemoryBackend keeps values in a map. It is used in tests and for throwaway sessions.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string][]byte
	limit  int64
}

// NewMemoryBackend creates an empty in-memory backend. A zero limit disables the quota.
func NewMemoryBackend(limit int64) *MemoryBackend {
	return &MemoryBackend{
		values: make(map[string][]byte),
		limit:  limit,
	}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.limit > 0 {
		var others int64
		for k, v := range m.values {
			if k != key {
				others += int64(len(k) + len(v))
			}
		}
		if others+int64(len(key)+len(value)) > m.limit {
			return ErrQuotaExceeded
		}
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *MemoryBackend) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryBackend) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string][]byte)
	return nil
}

func (m *MemoryBackend) Info() (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info := Info{Keys: make([]string, 0, len(m.values)), LimitSize: m.limit}
	for k, v := range m.values {
		info.Keys = append(info.Keys, k)
		info.CurrentSize += int64(len(k) + len(v))
	}
	sort.Strings(info.Keys)
	info.UsagePercent = usagePercent(info.CurrentSize, info.LimitSize)
	return info, nil
}
