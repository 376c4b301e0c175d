package timeutil

import (
	"regexp"
	"time"

	errorvalues "github.com/nmehta/activityclock/internal/error_values"
)

const dayKeyLayout = "2006-01-02"

var dayKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDayKey reports whether s is a YYYY-MM-DD key naming a real calendar day.
// The regexp keeps the strict zero-padded shape; the parse rejects impossible
// dates like 2026-02-31 that still match it.
func IsDayKey(s string) bool {
	if !dayKeyRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(dayKeyLayout, s)
	return err == nil
}

// DayKey returns the YYYY-MM-DD calendar day of instant t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// StartOfDay returns the exact local-midnight instant of the day containing t
// in loc. On DST transition days that day may span 23 or 25 real hours.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// MinutesSinceMidnight returns the local clock reading of t as minutes,
// always in [0, 1440). Built from clock fields rather than a subtraction so
// the figure stays a share of the nominal day across DST shifts.
func MinutesSinceMidnight(t time.Time, loc *time.Location) float64 {
	local := t.In(loc)
	return float64(local.Hour()*60+local.Minute()) + float64(local.Second())/60
}

// DiffMinutes returns b minus a in wall-clock minutes.
func DiffMinutes(a, b time.Time) float64 {
	return b.Sub(a).Minutes()
}

// IsWeekend reports whether the day key falls on Saturday or Sunday. The key
// is parsed as a naive calendar date, independent of the app time zone.
func IsWeekend(dayKey string) bool {
	d, err := time.Parse(dayKeyLayout, dayKey)
	if err != nil {
		return false
	}
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// PrevDayKey returns the calendar day before the given key.
func PrevDayKey(dayKey string) string {
	d, err := time.Parse(dayKeyLayout, dayKey)
	if err != nil {
		return dayKey
	}
	return d.AddDate(0, 0, -1).Format(dayKeyLayout)
}

// NextDayKey returns the calendar day after the given key.
func NextDayKey(dayKey string) string {
	d, err := time.Parse(dayKeyLayout, dayKey)
	if err != nil {
		return dayKey
	}
	return d.AddDate(0, 0, 1).Format(dayKeyLayout)
}

// Segment is a [Start, End) slice of an interval lying within one calendar day.
type Segment struct {
	Start time.Time
	End   time.Time
}

// SplitByMidnight cuts [start, end) at every local midnight of loc. The
// returned segments concatenate back to the input exactly; every segment lies
// within a single calendar day, and only the first and last may have
// non-midnight boundaries. A last segment of zero length is dropped.
func SplitByMidnight(start, end time.Time, loc *time.Location) ([]Segment, error) {
	if !end.After(start) {
		return nil, errorvalues.ErrInvalidInterval
	}
	segments := make([]Segment, 0, 2)
	cursor := start
	endKey := DayKey(end, loc)
	for DayKey(cursor, loc) != endKey {
		local := cursor.In(loc)
		nextMidnight := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
		segments = append(segments, Segment{Start: cursor, End: nextMidnight})
		cursor = nextMidnight
	}
	if end.After(cursor) {
		segments = append(segments, Segment{Start: cursor, End: end})
	}
	return segments, nil
}
