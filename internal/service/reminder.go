package service

import (
	"context"
	"sort"
	"time"

	"plantdiary/internal/models"
	"plantdiary/internal/storage"
	"plantdiary/internal/timeutil"
)

// ReminderView is a reminder joined with its plant and display texts.
type ReminderView struct {
	models.Reminder
	PlantName     string `json:"plantName"`
	Title         string `json:"title"`
	FrequencyText string `json:"frequencyText"`
	NextText      string `json:"nextText"`
}

// ReminderList is the reminder page.
type ReminderList struct {
	Reminders   []ReminderView `json:"reminders"`
	ActiveCount int            `json:"activeCount"`
	TotalCount  int            `json:"totalCount"`
}

// ReminderService provides reminder use cases.
type ReminderService interface {
	// List returns the reminders of existing plants, soonest first.
	List(ctx context.Context) (ReminderList, error)
	// Create adds a reminder. Without a next time it is scheduled one interval from now.
	Create(ctx context.Context, rem models.Reminder) (models.Reminder, error)
	// Update patches a reminder.
	Update(ctx context.Context, id string, patch models.ReminderPatch) (models.Reminder, error)
	// Toggle flips whether a reminder is enabled.
	Toggle(ctx context.Context, id string) (models.Reminder, error)
	// Delete removes a reminder.
	Delete(ctx context.Context, id string) error
}

type reminderService struct {
	repos *storage.Repos
	now   func() time.Time
}

// NewReminderService creates a new ReminderService.
func NewReminderService(repos *storage.Repos) ReminderService {
	return &reminderService{repos: repos, now: time.Now}
}

func (s *reminderService) List(ctx context.Context) (ReminderList, error) {
	plants := livePlants(s.repos.Plants.GetAll())
	now := s.now()

	list := ReminderList{Reminders: []ReminderView{}}
	for _, rem := range s.repos.Reminders.GetAll() {
		p, ok := plants[rem.PlantID]
		if !ok {
			continue
		}
		title, _ := rem.Type.Title()
		view := ReminderView{
			Reminder:      rem,
			PlantName:     p.Name,
			Title:         title,
			FrequencyText: timeutil.FrequencyText(rem.Frequency),
			NextText:      "Not set",
		}
		if rem.NextRemindTime != nil {
			view.NextText = timeutil.Countdown(int64(*rem.NextRemindTime), now)
		}
		if rem.IsEnabled {
			list.ActiveCount++
		}
		list.Reminders = append(list.Reminders, view)
	}
	list.TotalCount = len(list.Reminders)

	// Unscheduled reminders go last.
	sort.SliceStable(list.Reminders, func(i, j int) bool {
		a, b := list.Reminders[i].NextRemindTime, list.Reminders[j].NextRemindTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return list, nil
}

func (s *reminderService) Create(ctx context.Context, rem models.Reminder) (models.Reminder, error) {
	if rem.NextRemindTime == nil && rem.Frequency > 0 {
		next := timeutil.Timestamp(s.now().AddDate(0, 0, rem.Frequency).UnixMilli())
		rem.NextRemindTime = &next
	}

	created, err := s.repos.Reminders.Add(rem)
	if err != nil {
		loggerFrom(ctx).WarnContext(ctx, "failed to add reminder", "plant_id", rem.PlantID, "error", err)
		return models.Reminder{}, WrapError(err, "add reminder")
	}
	loggerFrom(ctx).InfoContext(ctx, "reminder added", "reminder_id", created.ID, "plant_id", created.PlantID)
	return created, nil
}

func (s *reminderService) Update(ctx context.Context, id string, patch models.ReminderPatch) (models.Reminder, error) {
	updated, err := s.repos.Reminders.Update(id, patch)
	if err != nil {
		return models.Reminder{}, WrapError(err, "update reminder")
	}
	return updated, nil
}

func (s *reminderService) Toggle(ctx context.Context, id string) (models.Reminder, error) {
	updated, err := s.repos.Reminders.Toggle(id)
	if err != nil {
		return models.Reminder{}, WrapError(err, "toggle reminder")
	}
	loggerFrom(ctx).InfoContext(ctx, "reminder toggled", "reminder_id", id, "enabled", updated.IsEnabled)
	return updated, nil
}

func (s *reminderService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Reminders.Delete(id); err != nil {
		return WrapError(err, "delete reminder")
	}
	return nil
}
