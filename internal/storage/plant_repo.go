package storage

import (
	"errors"
	"fmt"

	"plantdiary/internal/models"
)

// PlantRepo provides CRUD over the plants collection.
type PlantRepo struct {
	b *base
}

// GetAll returns every plant in insertion order.
func (r *PlantRepo) GetAll() []models.Plant {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.plants.load()
}

// SetAll replaces the whole collection.
func (r *PlantRepo) SetAll(plants []models.Plant) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.plants.save(plants)
}

// GetByID returns the plant with id, or ErrNotFound.
func (r *PlantRepo) GetByID(id string) (models.Plant, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	plants := r.b.plants.load()
	i := r.b.plants.indexOf(plants, id)
	if i < 0 {
		return models.Plant{}, ErrNotFound
	}
	return plants[i], nil
}

// Add validates p, assigns an ID and creation time, marks it as a pending local change,
// and appends it. An empty status defaults to healthy.
func (r *PlantRepo) Add(p models.Plant) (models.Plant, error) {
	if p.Status == "" {
		p.Status = models.StatusHealthy
	}
	if err := p.Validate(); err != nil {
		return models.Plant{}, err
	}

	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	p.ID = r.b.newID()
	p.CreateTime = r.b.now()
	p.LocalModified = true
	p.SyncStatus = models.SyncPending

	plants := r.b.plants.load()
	plants = append(plants, p)
	if err := r.b.plants.save(plants); err != nil {
		return models.Plant{}, err
	}
	return p, nil
}

// Update merges patch into the plant with id. A missing id returns ErrNotFound and writes nothing.
func (r *PlantRepo) Update(id string, patch models.PlantPatch) (models.Plant, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	plants := r.b.plants.load()
	i := r.b.plants.indexOf(plants, id)
	if i < 0 {
		return models.Plant{}, ErrNotFound
	}

	updated := patch.Apply(plants[i])
	if err := updated.Validate(); err != nil {
		return models.Plant{}, err
	}
	updated.LocalModified = true
	updated.SyncStatus = models.SyncPending

	plants[i] = updated
	if err := r.b.plants.save(plants); err != nil {
		return models.Plant{}, err
	}
	return updated, nil
}

// Delete removes the plant with id together with its records and reminders.
//
// Records are written first, then reminders, then plants. All three writes are attempted
// and the result is an error if any failed. There is no rollback across keys, so a
// failed write can leave dependents without their plant or a plant without its dependents.
func (r *PlantRepo) Delete(id string) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	plants := r.b.plants.load()
	remaining := filter(plants, func(p models.Plant) bool { return p.ID != id })
	if len(remaining) == len(plants) {
		return ErrNotFound
	}

	var errs []error

	records := r.b.records.load()
	keptRecords := filter(records, func(rec models.Record) bool { return rec.PlantID != id })
	if err := r.b.records.save(keptRecords); err != nil {
		errs = append(errs, fmt.Errorf("delete records of plant %s: %w", id, err))
	}

	reminders := r.b.reminders.load()
	keptReminders := filter(reminders, func(rem models.Reminder) bool { return rem.PlantID != id })
	if err := r.b.reminders.save(keptReminders); err != nil {
		errs = append(errs, fmt.Errorf("delete reminders of plant %s: %w", id, err))
	}

	if err := r.b.plants.save(remaining); err != nil {
		errs = append(errs, fmt.Errorf("delete plant %s: %w", id, err))
	}

	r.b.logger.Info("plant deleted",
		"plant_id", id,
		"records_removed", len(records)-len(keptRecords),
		"reminders_removed", len(reminders)-len(keptReminders),
		"failed_writes", len(errs),
	)
	return errors.Join(errs...)
}
