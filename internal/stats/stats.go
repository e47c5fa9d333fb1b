// Package stats derives the dashboard aggregates from plant, record and reminder snapshots.
// Every function is pure: callers pass the full collections and the reference time, and
// empty input yields zero-valued output.
package stats

import (
	"math"
	"time"

	"plantdiary/internal/models"
)

// percent returns part/total*100 rounded to one decimal, or 0 when total is not positive.
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// TypeCount is one bucket of a record type distribution.
type TypeCount struct {
	Type    models.RecordType `json:"type"`
	Label   string            `json:"label"`
	Icon    string            `json:"icon"`
	Color   string            `json:"color"`
	Count   int               `json:"count"`
	Percent float64           `json:"percent"`
}

// TypeStats is the record type distribution over a window.
type TypeStats struct {
	From  time.Time   `json:"from"`
	To    time.Time   `json:"to"`
	Total int         `json:"total"`
	Types []TypeCount `json:"types"`
}

// TypeDistribution counts records per type with recordTime in [from, to].
// Every record type is present in the result, in display order.
func TypeDistribution(records []models.Record, from, to time.Time) TypeStats {
	counts := make(map[models.RecordType]int)
	total := 0
	for _, rec := range records {
		t := rec.RecordTime.Time()
		if t.Before(from) || t.After(to) {
			continue
		}
		if !rec.Type.Valid() {
			continue
		}
		counts[rec.Type]++
		total++
	}

	result := TypeStats{From: from, To: to, Total: total}
	for _, typ := range models.AllRecordTypes() {
		d, _ := typ.Display()
		result.Types = append(result.Types, TypeCount{
			Type:    typ,
			Label:   d.Label,
			Icon:    d.Icon,
			Color:   d.Color,
			Count:   counts[typ],
			Percent: percent(counts[typ], total),
		})
	}
	return result
}

// MonthTypeDistribution is TypeDistribution from the first day of now's month up to now.
func MonthTypeDistribution(records []models.Record, now time.Time) TypeStats {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return TypeDistribution(records, from, now)
}

// StatusCount is one bucket of the plant status distribution.
type StatusCount struct {
	Status  models.Status `json:"status"`
	Label   string        `json:"label"`
	Icon    string        `json:"icon"`
	Color   string        `json:"color"`
	Count   int           `json:"count"`
	Percent float64       `json:"percent"`
}

// StatusDistribution counts plants per status as a share of all plants.
func StatusDistribution(plants []models.Plant) []StatusCount {
	counts := make(map[models.Status]int)
	for _, p := range plants {
		counts[p.Status]++
	}

	result := make([]StatusCount, 0, len(models.AllStatuses()))
	for _, s := range models.AllStatuses() {
		d, _ := s.Display()
		result = append(result, StatusCount{
			Status:  s,
			Label:   d.Label,
			Icon:    d.Icon,
			Color:   d.Color,
			Count:   counts[s],
			Percent: percent(counts[s], len(plants)),
		})
	}
	return result
}

// Summary holds the headline counts.
type Summary struct {
	Plants          int `json:"plants"`
	Records         int `json:"records"`
	Reminders       int `json:"reminders"`
	ActiveReminders int `json:"activeReminders"`
}

// Overview counts the collections and the enabled reminders.
func Overview(plants []models.Plant, records []models.Record, reminders []models.Reminder) Summary {
	s := Summary{
		Plants:    len(plants),
		Records:   len(records),
		Reminders: len(reminders),
	}
	for _, r := range reminders {
		if r.IsEnabled {
			s.ActiveReminders++
		}
	}
	return s
}
