package storage

import (
	"plantdiary/internal/models"
)

// RecordRepo provides CRUD over the care records collection.
type RecordRepo struct {
	b *base
}

// GetAll returns every record in insertion order, including dangling ones.
func (r *RecordRepo) GetAll() []models.Record {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.records.load()
}

// SetAll replaces the whole collection.
func (r *RecordRepo) SetAll(records []models.Record) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.records.save(records)
}

// GetByID returns the record with id, or ErrNotFound.
func (r *RecordRepo) GetByID(id string) (models.Record, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	records := r.b.records.load()
	i := r.b.records.indexOf(records, id)
	if i < 0 {
		return models.Record{}, ErrNotFound
	}
	return records[i], nil
}

// ListByPlant returns the records of one plant in insertion order.
func (r *RecordRepo) ListByPlant(plantID string) []models.Record {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return filter(r.b.records.load(), func(rec models.Record) bool { return rec.PlantID == plantID })
}

// Add validates rec, checks its plant exists, assigns an ID and creation time and appends it.
func (r *RecordRepo) Add(rec models.Record) (models.Record, error) {
	if err := rec.Validate(); err != nil {
		return models.Record{}, err
	}

	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	if r.b.plants.indexOf(r.b.plants.load(), rec.PlantID) < 0 {
		return models.Record{}, &models.ValidationError{Field: "plantId", Message: "plant does not exist"}
	}

	rec.ID = r.b.newID()
	rec.CreateTime = r.b.now()
	rec.LocalCreated = true

	records := r.b.records.load()
	records = append(records, rec)
	if err := r.b.records.save(records); err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

// Update merges patch into the record with id. A missing id returns ErrNotFound and writes nothing.
func (r *RecordRepo) Update(id string, patch models.RecordPatch) (models.Record, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	records := r.b.records.load()
	i := r.b.records.indexOf(records, id)
	if i < 0 {
		return models.Record{}, ErrNotFound
	}

	updated := patch.Apply(records[i])
	if err := updated.Validate(); err != nil {
		return models.Record{}, err
	}

	records[i] = updated
	if err := r.b.records.save(records); err != nil {
		return models.Record{}, err
	}
	return updated, nil
}

// Delete removes the record with id. A missing id returns ErrNotFound and writes nothing.
func (r *RecordRepo) Delete(id string) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	records := r.b.records.load()
	remaining := filter(records, func(rec models.Record) bool { return rec.ID != id })
	if len(remaining) == len(records) {
		return ErrNotFound
	}
	return r.b.records.save(remaining)
}
