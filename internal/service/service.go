// Package service implements the use cases behind the HTTP API and the CLI:
// listings with joins and paging, detail views, and the statistics dashboards.
package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_services.go -package=mocks plantdiary/internal/service PlantService,RecordService,ReminderService,StatsService,SyncService,StorageService

import (
	"context"
	"log/slog"
	"time"

	"plantdiary/internal/contextutil"
	"plantdiary/internal/models"
	"plantdiary/internal/timeutil"
)

// Options tunes listing sizes and default windows.
type Options struct {
	PageSize      int
	RecentRecords int
	TrendDays     int
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{PageSize: 10, RecentRecords: 5, TrendDays: 7}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PageSize <= 0 {
		o.PageSize = d.PageSize
	}
	if o.RecentRecords <= 0 {
		o.RecentRecords = d.RecentRecords
	}
	if o.TrendDays <= 0 {
		o.TrendDays = d.TrendDays
	}
	return o
}

func loggerFrom(ctx context.Context) *slog.Logger {
	return contextutil.LoggerFromContext(ctx)
}

// livePlants indexes plants by ID.
func livePlants(plants []models.Plant) map[string]models.Plant {
	byID := make(map[string]models.Plant, len(plants))
	for _, p := range plants {
		byID[p.ID] = p
	}
	return byID
}

// growthDays counts whole days since plantDate, clamped at zero.
// An unreadable date counts as zero days.
func growthDays(plantDate string, now time.Time) int {
	if plantDate == "" {
		return 0
	}
	ts, err := timeutil.Parse(plantDate)
	if err != nil {
		return 0
	}
	days := timeutil.DaysBetween(timeutil.ToTime(ts), now)
	if days < 0 {
		return 0
	}
	return days
}
