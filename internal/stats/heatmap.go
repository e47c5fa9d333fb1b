package stats

import (
	"time"

	"plantdiary/internal/models"
)

// LevelPadding marks a calendar cell outside the displayed month.
const LevelPadding = -1

// Cell is one day of the heatmap calendar.
type Cell struct {
	Date    time.Time `json:"date"`
	Day     int       `json:"day"`
	Count   int       `json:"count"`
	Level   int       `json:"level"`
	InMonth bool      `json:"inMonth"`
}

// Calendar is a month laid out in Monday to Sunday weeks.
type Calendar struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Max   int        `json:"max"`
	Total int        `json:"total"`
	Weeks [][7]Cell  `json:"weeks"`
}

// Level buckets a daily count against the month maximum: 0 for no records,
// then 1 to 4 for the quartiles of (0, max].
func Level(count, max int) int {
	switch {
	case count <= 0 || max <= 0:
		return 0
	case count*4 <= max:
		return 1
	case count*2 <= max:
		return 2
	case count*4 <= max*3:
		return 3
	default:
		return 4
	}
}

// Heatmap builds the calendar of record counts for one month in loc.
// Days of the neighbouring months that fill the first and last week carry LevelPadding.
func Heatmap(records []models.Record, year int, month time.Month, loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	counts := make([]int, daysInMonth+1)
	cal := Calendar{Year: year, Month: month}
	for _, rec := range records {
		t := rec.RecordTime.Time().In(loc)
		if t.Year() != year || t.Month() != month {
			continue
		}
		counts[t.Day()]++
		cal.Total++
	}
	for _, c := range counts {
		if c > cal.Max {
			cal.Max = c
		}
	}

	// Monday is column 0.
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)
	cells := offset + daysInMonth
	weeks := (cells + 6) / 7

	cal.Weeks = make([][7]Cell, weeks)
	for w := 0; w < weeks; w++ {
		for d := 0; d < 7; d++ {
			date := start.AddDate(0, 0, w*7+d)
			cell := Cell{Date: date, Day: date.Day()}
			if date.Month() == month && date.Year() == year {
				cell.InMonth = true
				cell.Count = counts[date.Day()]
				cell.Level = Level(cell.Count, cal.Max)
			} else {
				cell.Level = LevelPadding
			}
			cal.Weeks[w][d] = cell
		}
	}
	return cal
}
