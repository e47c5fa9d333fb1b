package service

import (
	"context"
	"fmt"
	"time"

	"plantdiary/internal/models"
	"plantdiary/internal/stats"
	"plantdiary/internal/storage"
)

const (
	maxTrendDays   = 366
	maxTrendMonths = 60
)

// StatsService serves the statistics dashboards. Records of deleted plants are ignored.
type StatsService interface {
	Overview(ctx context.Context) (stats.Summary, error)
	// Types returns the record type distribution of the current month.
	Types(ctx context.Context) (stats.TypeStats, error)
	// DailyTrend returns the per-day counts of the last days days; zero uses the configured default.
	DailyTrend(ctx context.Context, days int) ([]stats.TrendPoint, error)
	MonthlyTrend(ctx context.Context, months int) ([]stats.TrendPoint, error)
	// Heatmap returns the calendar of one month; a zero year or month means the current one.
	Heatmap(ctx context.Context, year int, month time.Month) (stats.Calendar, error)
	Status(ctx context.Context) ([]stats.StatusCount, error)
	Activity(ctx context.Context) ([]stats.PlantActivity, error)
}

type statsService struct {
	repos *storage.Repos
	opts  Options
	now   func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(repos *storage.Repos, opts Options) StatsService {
	return &statsService{repos: repos, opts: opts.withDefaults(), now: time.Now}
}

// snapshot loads plants and the records that still reference one of them.
func (s *statsService) snapshot() ([]models.Plant, []models.Record) {
	plants := s.repos.Plants.GetAll()
	alive := livePlants(plants)
	var records []models.Record
	for _, rec := range s.repos.Records.GetAll() {
		if _, ok := alive[rec.PlantID]; ok {
			records = append(records, rec)
		}
	}
	return plants, records
}

func (s *statsService) Overview(ctx context.Context) (stats.Summary, error) {
	plants, records := s.snapshot()
	alive := livePlants(plants)
	var reminders []models.Reminder
	for _, rem := range s.repos.Reminders.GetAll() {
		if _, ok := alive[rem.PlantID]; ok {
			reminders = append(reminders, rem)
		}
	}
	return stats.Overview(plants, records, reminders), nil
}

func (s *statsService) Types(ctx context.Context) (stats.TypeStats, error) {
	_, records := s.snapshot()
	return stats.MonthTypeDistribution(records, s.now()), nil
}

func (s *statsService) DailyTrend(ctx context.Context, days int) ([]stats.TrendPoint, error) {
	if days == 0 {
		days = s.opts.TrendDays
	}
	if days < 0 || days > maxTrendDays {
		return nil, &ValidationError{Field: "days", Message: fmt.Sprintf("must be between 1 and %d", maxTrendDays)}
	}
	_, records := s.snapshot()
	return stats.DailyTrend(records, days, s.now()), nil
}

func (s *statsService) MonthlyTrend(ctx context.Context, months int) ([]stats.TrendPoint, error) {
	if months == 0 {
		months = 6
	}
	if months < 0 || months > maxTrendMonths {
		return nil, &ValidationError{Field: "months", Message: fmt.Sprintf("must be between 1 and %d", maxTrendMonths)}
	}
	_, records := s.snapshot()
	return stats.MonthlyTrend(records, months, s.now()), nil
}

func (s *statsService) Heatmap(ctx context.Context, year int, month time.Month) (stats.Calendar, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		return stats.Calendar{}, &ValidationError{Field: "month", Message: "must be between 1 and 12"}
	}
	if year < 1970 || year > 9999 {
		return stats.Calendar{}, &ValidationError{Field: "year", Message: "out of range"}
	}
	_, records := s.snapshot()
	return stats.Heatmap(records, year, month, now.Location()), nil
}

func (s *statsService) Status(ctx context.Context) ([]stats.StatusCount, error) {
	return stats.StatusDistribution(s.repos.Plants.GetAll()), nil
}

func (s *statsService) Activity(ctx context.Context) ([]stats.PlantActivity, error) {
	plants, records := s.snapshot()
	return stats.ActivityRanking(plants, records), nil
}
