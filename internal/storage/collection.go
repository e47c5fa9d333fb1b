package storage

import (
	"errors"

	"plantdiary/internal/kv"
)

// ErrNotFound is returned when no entity has the requested ID.
var ErrNotFound = errors.New("record not found")

// collection is one entity list stored whole under a single key.
type collection[T any] struct {
	store *kv.Store
	key   string
	idOf  func(T) string
}

// load returns the stored list, or an empty list when nothing readable is stored.
func (c collection[T]) load() []T {
	items := kv.Get(c.store, c.key, []T{})
	if items == nil {
		return []T{}
	}
	return items
}

func (c collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.store.Set(c.key, items)
}

// indexOf returns the position of id in items, or -1.
func (c collection[T]) indexOf(items []T, id string) int {
	for i, item := range items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}

// filter returns the items keep accepts, in order.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
