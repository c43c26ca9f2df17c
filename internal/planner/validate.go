// Package planner is the pure scheduling and recommendation core: validation,
// conflict detection, filtering, weighted shuffling, personalization, and quiz
// scoring. Nothing here performs I/O or consults a global clock; callers pass
// "now", a timezone, and (for shuffling) a random source explicitly.
package planner

import (
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/ayane-kurokawa/waggle/api/internal/timeutil"
)

// ValidationResult is returned by ValidateScheduledActivity. Errors block
// persistence; warnings are advisory only and never block.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validation messages are part of the API surface; the client matches on them.
const (
	ErrNoDogSelected     = "no dog selected"
	ErrDogIDMissing      = "dog id missing"
	ErrActivityIDMissing = "activity id missing"
	ErrInvalidDateFormat = "invalid date format"
	ErrPastDate          = "cannot schedule past dates"
	ErrWeekOutOfRange    = "week number out of range"
	ErrDayOutOfRange     = "day of week out of range"

	WarnFarFuture = "scheduled more than 3 months ahead"
)

// ValidateScheduledActivity checks a candidate schedule entry against its dog
// context. All rules are evaluated independently and errors accumulate; only
// missing dog context short-circuits. Dates earlier than one day before
// today's local midnight are rejected; the one-day grace window deliberately
// tolerates timezone skew between client and server.
func ValidateScheduledActivity(a model.ScheduledActivity, dog *model.Dog, now time.Time, loc *time.Location) ValidationResult {
	var errs, warns []string

	if dog == nil {
		return ValidationResult{Valid: false, Errors: []string{ErrNoDogSelected}}
	}
	if dog.ID == "" {
		return ValidationResult{Valid: false, Errors: []string{ErrDogIDMissing}}
	}

	if a.ActivityID == "" {
		errs = append(errs, ErrActivityIDMissing)
	}

	if a.ScheduledDate == "" {
		errs = append(errs, ErrInvalidDateFormat)
	} else if date, err := timeutil.ParseDate(a.ScheduledDate, loc); err != nil {
		errs = append(errs, ErrInvalidDateFormat)
	} else {
		earliest := timeutil.StartOfDay(now, loc).AddDate(0, 0, -1)
		if date.Before(earliest) {
			errs = append(errs, ErrPastDate)
		}
		if date.After(now.In(loc).AddDate(0, 3, 0)) {
			warns = append(warns, WarnFarFuture)
		}
	}

	if a.WeekNumber != nil && (*a.WeekNumber < 1 || *a.WeekNumber > 53) {
		errs = append(errs, ErrWeekOutOfRange)
	}
	if a.DayOfWeek != nil && (*a.DayOfWeek < 0 || *a.DayOfWeek > 6) {
		errs = append(errs, ErrDayOutOfRange)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}
