package timeutil

import (
	"fmt"
	"time"
)

// DayGroupLabel names the day of ts relative to now: "Today", "Yesterday",
// the weekday for the rest of the past week, otherwise "MM-DD".
func DayGroupLabel(ts int64, now time.Time) string {
	day := ToTime(ts)
	diff := DaysBetween(day, now)

	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Yesterday"
	case diff > 1 && diff < 7:
		return day.Weekday().String()[:3]
	default:
		return day.Format("01-02")
	}
}

// Countdown describes how far ts lies ahead of now.
func Countdown(ts int64, now time.Time) string {
	diff := ToTime(ts).Sub(now)

	switch {
	case diff < 0:
		return "Overdue"
	case diff < time.Hour:
		return fmt.Sprintf("in %d min", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("in %d h", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("in %d days", int(diff/(24*time.Hour)))
	default:
		return ToTime(ts).Format("01-02 15:04")
	}
}

// FrequencyText renders a reminder interval in days.
func FrequencyText(days int) string {
	switch {
	case days <= 0:
		return "Not set"
	case days == 1:
		return "Daily"
	case days == 7:
		return "Weekly"
	case days == 30:
		return "Monthly"
	default:
		return fmt.Sprintf("Every %d days", days)
	}
}
