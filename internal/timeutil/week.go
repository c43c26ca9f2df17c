package timeutil

import (
	"os"
	"time"
)

const dateLayout = "2006-01-02"

// AppLocation resolves the application timezone from APP_TIMEZONE.
// Day and week boundaries are computed in this location; it is resolved
// once at startup and passed down explicitly so tests stay reproducible.
func AppLocation() *time.Location {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ISOWeek returns the ISO-8601 week number of t, in [1,53].
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// ISOWeekYear returns the ISO week-numbering year and week of t.
func ISOWeekYear(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// WeekStart returns the Monday at 00:00:00 in loc of the week containing t.
// Sunday maps to the Monday six days prior.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	t = t.AddDate(0, 0, -offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameISOWeek reports whether a and b fall in the same ISO week and
// week-numbering year.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDate parses a YYYY-MM-DD string at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// MondayOfISOWeek returns the Monday starting the given ISO week of year.
func MondayOfISOWeek(year, week int, loc *time.Location) time.Time {
	// Jan 4 is always inside ISO week 1.
	anchor := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	return WeekStart(anchor, loc).AddDate(0, 0, (week-1)*7)
}
