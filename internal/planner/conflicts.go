package planner

import (
	"fmt"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

// DefaultMaxPerDay caps how many activities a dog can have on one date.
const DefaultMaxPerDay = 5

// ConflictResult reports a single conflict check. Duplicate=true means the
// candidate is rejected; Conflict carries the offending record for display.
type ConflictResult struct {
	Duplicate bool                     `json:"duplicate"`
	Reason    string                   `json:"reason,omitempty"` // exact_duplicate | daily_limit
	Message   string                   `json:"message,omitempty"`
	Conflict  *model.ScheduledActivity `json:"conflict,omitempty"`
}

// CheckExactDuplicate flags a candidate that matches an existing entry on
// activity, dog, and date (string equality on the ISO date).
func CheckExactDuplicate(candidate model.ScheduledActivity, existing []model.ScheduledActivity) ConflictResult {
	for i := range existing {
		e := &existing[i]
		if e.ActivityID == candidate.ActivityID &&
			e.DogID == candidate.DogID &&
			e.ScheduledDate == candidate.ScheduledDate {
			return ConflictResult{
				Duplicate: true,
				Reason:    "exact_duplicate",
				Message:   "this activity is already scheduled for that day",
				Conflict:  e,
			}
		}
	}
	return ConflictResult{}
}

// CheckDailyLimit rejects the candidate when the dog already has maxPerDay or
// more entries on the same date. maxPerDay <= 0 falls back to DefaultMaxPerDay.
func CheckDailyLimit(candidate model.ScheduledActivity, existing []model.ScheduledActivity, maxPerDay int) ConflictResult {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	count := 0
	for i := range existing {
		if existing[i].DogID == candidate.DogID && existing[i].ScheduledDate == candidate.ScheduledDate {
			count++
		}
	}
	if count >= maxPerDay {
		return ConflictResult{
			Duplicate: true,
			Reason:    "daily_limit",
			Message:   fmt.Sprintf("daily limit of %d activities reached for this day", maxPerDay),
		}
	}
	return ConflictResult{}
}

// CheckTimeConflicts is reserved for time-of-day scheduling and always passes.
// Intentional stub until schedule entries carry a time component.
func CheckTimeConflicts(candidate model.ScheduledActivity, existing []model.ScheduledActivity) ConflictResult {
	return ConflictResult{}
}

// ComprehensiveCheck runs the exact-duplicate check first (short-circuiting on
// failure), then the daily limit, then time conflicts. The first failing
// result is returned as-is.
func ComprehensiveCheck(candidate model.ScheduledActivity, existing []model.ScheduledActivity, maxPerDay int) ConflictResult {
	if res := CheckExactDuplicate(candidate, existing); res.Duplicate {
		return res
	}
	if res := CheckDailyLimit(candidate, existing, maxPerDay); res.Duplicate {
		return res
	}
	return CheckTimeConflicts(candidate, existing)
}
