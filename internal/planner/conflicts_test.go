package planner

import (
	"fmt"
	"testing"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

func sched(dogID, activityID, date string) model.ScheduledActivity {
	return model.ScheduledActivity{DogID: dogID, ActivityID: activityID, ScheduledDate: date}
}

func TestCheckExactDuplicate(t *testing.T) {
	existing := []model.ScheduledActivity{
		sched("dog-1", "act-1", "2025-06-16"),
		sched("dog-1", "act-2", "2025-06-16"),
	}

	res := CheckExactDuplicate(sched("dog-1", "act-1", "2025-06-16"), existing)
	if !res.Duplicate || res.Reason != "exact_duplicate" {
		t.Fatalf("expected duplicate, got %+v", res)
	}
	if res.Conflict == nil || res.Conflict.ActivityID != "act-1" {
		t.Fatalf("expected conflicting record back, got %+v", res.Conflict)
	}

	// Changing any one of the three fields clears the duplicate.
	for _, c := range []model.ScheduledActivity{
		sched("dog-2", "act-1", "2025-06-16"),
		sched("dog-1", "act-9", "2025-06-16"),
		sched("dog-1", "act-1", "2025-06-17"),
	} {
		if CheckExactDuplicate(c, existing).Duplicate {
			t.Errorf("%+v should not be a duplicate", c)
		}
	}
}

func TestCheckDailyLimit(t *testing.T) {
	existing := []model.ScheduledActivity{
		sched("dog-1", "act-1", "2025-06-16"),
		sched("dog-1", "act-2", "2025-06-16"),
		sched("dog-2", "act-3", "2025-06-16"), // other dog, must not count
		sched("dog-1", "act-4", "2025-06-17"), // other day, must not count
	}

	if res := CheckDailyLimit(sched("dog-1", "act-5", "2025-06-16"), existing, 2); !res.Duplicate {
		t.Fatal("two existing entries with maxPerDay=2 should reject")
	}
	if res := CheckDailyLimit(sched("dog-1", "act-5", "2025-06-17"), existing, 2); res.Duplicate {
		t.Fatal("one existing entry with maxPerDay=2 should pass")
	}

	// maxPerDay <= 0 falls back to the default of 5.
	var five []model.ScheduledActivity
	for i := 0; i < 5; i++ {
		five = append(five, sched("dog-1", fmt.Sprintf("act-%d", i), "2025-06-16"))
	}
	if res := CheckDailyLimit(sched("dog-1", "act-x", "2025-06-16"), five, 0); !res.Duplicate {
		t.Fatal("default limit of 5 should reject the sixth entry")
	}
	if res := CheckDailyLimit(sched("dog-1", "act-x", "2025-06-16"), five[:4], 0); res.Duplicate {
		t.Fatal("four entries under default limit should pass")
	}
}

func TestCheckTimeConflictsAlwaysPasses(t *testing.T) {
	existing := []model.ScheduledActivity{sched("dog-1", "act-1", "2025-06-16")}
	if res := CheckTimeConflicts(sched("dog-1", "act-1", "2025-06-16"), existing); res.Duplicate {
		t.Fatal("time conflict check is a stub and must pass")
	}
}

func TestComprehensiveCheckOrder(t *testing.T) {
	existing := []model.ScheduledActivity{
		sched("dog-1", "act-1", "2025-06-16"),
		sched("dog-1", "act-2", "2025-06-16"),
	}

	// Exact duplicate wins even when the daily limit would also trip.
	res := ComprehensiveCheck(sched("dog-1", "act-1", "2025-06-16"), existing, 2)
	if res.Reason != "exact_duplicate" {
		t.Fatalf("expected exact_duplicate first, got %+v", res)
	}

	res = ComprehensiveCheck(sched("dog-1", "act-9", "2025-06-16"), existing, 2)
	if res.Reason != "daily_limit" {
		t.Fatalf("expected daily_limit, got %+v", res)
	}

	res = ComprehensiveCheck(sched("dog-1", "act-9", "2025-06-18"), existing, 2)
	if res.Duplicate {
		t.Fatalf("expected pass, got %+v", res)
	}
}
