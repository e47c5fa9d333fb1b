package stats

import (
	"time"

	"plantdiary/internal/models"
	"plantdiary/internal/timeutil"
)

// TrendPoint is the record count of one day or month.
type TrendPoint struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	Count   int       `json:"count"`
	Percent float64   `json:"percent"`
}

// DailyTrend counts records for the days calendar days ending with now's day, newest first.
// Percent is relative to the busiest day of the window; the divisor is at least 1.
func DailyTrend(records []models.Record, days int, now time.Time) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}

	counts := make([]int, days)
	for _, rec := range records {
		ago := timeutil.DaysBetween(rec.RecordTime.Time().In(now.Location()), now)
		if ago >= 0 && ago < days {
			counts[ago]++
		}
	}

	today := timeutil.StartOfDay(now)
	points := make([]TrendPoint, days)
	for i := range points {
		start := today.AddDate(0, 0, -i)
		points[i] = TrendPoint{Label: start.Format("01-02"), Start: start, Count: counts[i]}
	}
	normalize(points)
	return points
}

// MonthlyTrend counts records for the months calendar months ending with now's month, newest first.
func MonthlyTrend(records []models.Record, months int, now time.Time) []TrendPoint {
	if months <= 0 {
		return []TrendPoint{}
	}

	counts := make([]int, months)
	for _, rec := range records {
		t := rec.RecordTime.Time().In(now.Location())
		ago := (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
		if ago >= 0 && ago < months {
			counts[ago]++
		}
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	points := make([]TrendPoint, months)
	for i := range points {
		start := first.AddDate(0, -i, 0)
		points[i] = TrendPoint{Label: start.Format("2006-01"), Start: start, Count: counts[i]}
	}
	normalize(points)
	return points
}

func normalize(points []TrendPoint) {
	max := 1
	for _, p := range points {
		if p.Count > max {
			max = p.Count
		}
	}
	for i := range points {
		points[i].Percent = percent(points[i].Count, max)
	}
}
