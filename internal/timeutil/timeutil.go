// Package timeutil normalizes the date representations found in stored data
// (epoch milliseconds, digit strings, bare dates, date-time strings) to epoch
// milliseconds and formats them back for display. All calendar math uses time.Local.
package timeutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseable is returned by Parse when a value cannot be read as a point in time.
var ErrUnparseable = errors.New("unparseable time value")

var (
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	bareDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Layouts tried for strings that are neither digits nor a bare date.
// Layouts without a zone are read in local time.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006/1/2",
}

// Now returns the current time in epoch milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}

// Parse converts v to epoch milliseconds.
func Parse(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrUnparseable)
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case float64:
		return int64(x), nil
	case float32:
		return int64(x), nil
	case Timestamp:
		return int64(x), nil
	case *Timestamp:
		if x == nil {
			return 0, fmt.Errorf("%w: nil", ErrUnparseable)
		}
		return int64(*x), nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		if f, err := x.Float64(); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, x.String())
	case time.Time:
		if x.IsZero() {
			return 0, fmt.Errorf("%w: zero time", ErrUnparseable)
		}
		return x.UnixMilli(), nil
	case string:
		return parseString(x)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrUnparseable, v)
	}
}

func parseString(s string) (int64, error) {
	s = strings.TrimSpace(s)

	if digitsPattern.MatchString(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
		}
		return n, nil
	}

	if bareDatePattern.MatchString(s) {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
		}
		return t.UnixMilli(), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UnixMilli(), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.UnixMilli(), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnparseable, s)
}

// ParseToTimestamp is Parse with the lenient fallback: nil or unparseable input
// yields the current time. The fallback is logged so malformed data stays visible.
func ParseToTimestamp(v any) int64 {
	ts, err := Parse(v)
	if err != nil {
		slog.Default().Warn("time value fell back to now", "value", v, "error", err)
		return Now()
	}
	return ts
}

// ToTime converts epoch milliseconds to a local time.Time.
func ToTime(ts int64) time.Time {
	return time.UnixMilli(ts).In(time.Local)
}

// FormatDate renders ts as YYYY-MM-DD in local time.
func FormatDate(ts int64) string {
	return ToTime(ts).Format("2006-01-02")
}

// FormatDateTime renders ts as YYYY-MM-DD HH:MM:SS in local time.
func FormatDateTime(ts int64) string {
	return ToTime(ts).Format("2006-01-02 15:04:05")
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from a to b. It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	a = StartOfDay(a)
	b = StartOfDay(b.In(a.Location()))
	// Round trip through UTC dates so DST shifts do not lose a day.
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
