package storage

import (
	"plantdiary/internal/models"
)

// ReminderRepo provides CRUD over the reminders collection.
type ReminderRepo struct {
	b *base
}

// GetAll returns every reminder in insertion order, including dangling ones.
func (r *ReminderRepo) GetAll() []models.Reminder {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.reminders.load()
}

// SetAll replaces the whole collection.
func (r *ReminderRepo) SetAll(reminders []models.Reminder) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return r.b.reminders.save(reminders)
}

// GetByID returns the reminder with id, or ErrNotFound.
func (r *ReminderRepo) GetByID(id string) (models.Reminder, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	reminders := r.b.reminders.load()
	i := r.b.reminders.indexOf(reminders, id)
	if i < 0 {
		return models.Reminder{}, ErrNotFound
	}
	return reminders[i], nil
}

// ListByPlant returns the reminders of one plant.
func (r *ReminderRepo) ListByPlant(plantID string) []models.Reminder {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	return filter(r.b.reminders.load(), func(rem models.Reminder) bool { return rem.PlantID == plantID })
}

// Add validates rem, checks its plant exists, assigns an ID and creation time,
// enables it and appends it.
func (r *ReminderRepo) Add(rem models.Reminder) (models.Reminder, error) {
	if err := rem.Validate(); err != nil {
		return models.Reminder{}, err
	}

	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	if r.b.plants.indexOf(r.b.plants.load(), rem.PlantID) < 0 {
		return models.Reminder{}, &models.ValidationError{Field: "plantId", Message: "plant does not exist"}
	}

	rem.ID = r.b.newID()
	rem.CreateTime = r.b.now()
	rem.IsEnabled = true

	reminders := r.b.reminders.load()
	reminders = append(reminders, rem)
	if err := r.b.reminders.save(reminders); err != nil {
		return models.Reminder{}, err
	}
	return rem, nil
}

// Update merges patch into the reminder with id. A missing id returns ErrNotFound and writes nothing.
func (r *ReminderRepo) Update(id string, patch models.ReminderPatch) (models.Reminder, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	reminders := r.b.reminders.load()
	i := r.b.reminders.indexOf(reminders, id)
	if i < 0 {
		return models.Reminder{}, ErrNotFound
	}

	updated := patch.Apply(reminders[i])
	if err := updated.Validate(); err != nil {
		return models.Reminder{}, err
	}

	reminders[i] = updated
	if err := r.b.reminders.save(reminders); err != nil {
		return models.Reminder{}, err
	}
	return updated, nil
}

// Toggle flips IsEnabled on the reminder with id.
func (r *ReminderRepo) Toggle(id string) (models.Reminder, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	reminders := r.b.reminders.load()
	i := r.b.reminders.indexOf(reminders, id)
	if i < 0 {
		return models.Reminder{}, ErrNotFound
	}

	reminders[i].IsEnabled = !reminders[i].IsEnabled
	if err := r.b.reminders.save(reminders); err != nil {
		return models.Reminder{}, err
	}
	return reminders[i], nil
}

// Delete removes the reminder with id. A missing id returns ErrNotFound and writes nothing.
func (r *ReminderRepo) Delete(id string) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	reminders := r.b.reminders.load()
	remaining := filter(reminders, func(rem models.Reminder) bool { return rem.ID != id })
	if len(remaining) == len(reminders) {
		return ErrNotFound
	}
	return r.b.reminders.save(remaining)
}
