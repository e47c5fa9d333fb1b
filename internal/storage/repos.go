// Package storage implements the entity repositories. Every repository keeps its whole
// collection under one store key and round-trips the full list on each operation.
package storage

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"plantdiary/internal/kv"
	"plantdiary/internal/models"
)

// Repos bundles the repositories that share one store.
type Repos struct {
	Plants    *PlantRepo
	Records   *RecordRepo
	Reminders *ReminderRepo
	State     *StateRepo

	base *base
}

// base is shared by every repository of one store. The mutex makes each
// read-modify-write cycle, including multi-key cascades, run alone.
type base struct {
	mu        sync.Mutex
	store     *kv.Store
	plants    collection[models.Plant]
	records   collection[models.Record]
	reminders collection[models.Reminder]
	newID     func() string
	now       func() time.Time
	logger    *slog.Logger
}

// New creates the repositories over store.
func New(store *kv.Store) *Repos {
	b := &base{
		store: store,
		plants: collection[models.Plant]{
			store: store, key: kv.KeyPlants,
			idOf: func(p models.Plant) string { return p.ID },
		},
		records: collection[models.Record]{
			store: store, key: kv.KeyRecords,
			idOf: func(r models.Record) string { return r.ID },
		},
		reminders: collection[models.Reminder]{
			store: store, key: kv.KeyReminders,
			idOf: func(r models.Reminder) string { return r.ID },
		},
		newID:  uuid.NewString,
		now:    time.Now,
		logger: slog.Default(),
	}

	return &Repos{
		Plants:    &PlantRepo{b: b},
		Records:   &RecordRepo{b: b},
		Reminders: &ReminderRepo{b: b},
		State:     &StateRepo{b: b},
		base:      b,
	}
}

// Store returns the underlying store.
func (r *Repos) Store() *kv.Store {
	return r.base.store
}

// CleanupResult reports how many dangling entities were dropped.
type CleanupResult struct {
	RecordsRemoved   int `json:"recordsRemoved"`
	RemindersRemoved int `json:"remindersRemoved"`
}

// CleanupOrphans removes records and reminders whose plant no longer exists.
// A collection is only rewritten when something was removed.
func (r *Repos) CleanupOrphans() (CleanupResult, error) {
	b := r.base
	b.mu.Lock()
	defer b.mu.Unlock()

	alive := make(map[string]bool)
	for _, p := range b.plants.load() {
		alive[p.ID] = true
	}

	var result CleanupResult
	var errs []error

	records := b.records.load()
	validRecords := filter(records, func(rec models.Record) bool { return alive[rec.PlantID] })
	if removed := len(records) - len(validRecords); removed > 0 {
		if err := b.records.save(validRecords); err != nil {
			errs = append(errs, err)
		} else {
			result.RecordsRemoved = removed
		}
	}

	reminders := b.reminders.load()
	validReminders := filter(reminders, func(rem models.Reminder) bool { return alive[rem.PlantID] })
	if removed := len(reminders) - len(validReminders); removed > 0 {
		if err := b.reminders.save(validReminders); err != nil {
			errs = append(errs, err)
		} else {
			result.RemindersRemoved = removed
		}
	}

	b.logger.Info("cleaned up dangling data",
		"records_removed", result.RecordsRemoved,
		"reminders_removed", result.RemindersRemoved,
	)
	return result, errors.Join(errs...)
}
