package planner

import (
	"testing"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

var testNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func testDog() *model.Dog {
	return &model.Dog{ID: "dog-1", UserID: "user-1", Name: "Mugi", Breed: "shiba inu"}
}

func dateOffset(days int) string {
	return testNow.AddDate(0, 0, days).Format("2006-01-02")
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

func TestValidateScheduledActivityValid(t *testing.T) {
	a := model.ScheduledActivity{DogID: "dog-1", ActivityID: "lib-snuffle-mat", ScheduledDate: dateOffset(0)}
	res := ValidateScheduledActivity(a, testDog(), testNow, time.UTC)
	if !res.Valid {
		t.Fatalf("expected valid, errors = %v", res.Errors)
	}
	if len(res.Errors) != 0 || len(res.Warnings) != 0 {
		t.Fatalf("expected clean result, got errors=%v warnings=%v", res.Errors, res.Warnings)
	}
}

func TestValidateScheduledActivityNoDog(t *testing.T) {
	a := model.ScheduledActivity{ActivityID: "x", ScheduledDate: dateOffset(0)}
	res := ValidateScheduledActivity(a, nil, testNow, time.UTC)
	if res.Valid || !contains(res.Errors, ErrNoDogSelected) {
		t.Fatalf("got %v", res)
	}
	// Missing dog short-circuits: no other errors accumulate.
	if len(res.Errors) != 1 {
		t.Fatalf("expected single error, got %v", res.Errors)
	}

	res = ValidateScheduledActivity(a, &model.Dog{}, testNow, time.UTC)
	if res.Valid || !contains(res.Errors, ErrDogIDMissing) {
		t.Fatalf("got %v", res)
	}
}

func TestValidateScheduledActivityPastDateBoundary(t *testing.T) {
	a := model.ScheduledActivity{ActivityID: "x", ScheduledDate: dateOffset(-2)}
	res := ValidateScheduledActivity(a, testDog(), testNow, time.UTC)
	if res.Valid || !contains(res.Errors, ErrPastDate) {
		t.Fatalf("two days back should be rejected, got %v", res)
	}

	// Yesterday is inside the one-day grace window.
	a.ScheduledDate = dateOffset(-1)
	res = ValidateScheduledActivity(a, testDog(), testNow, time.UTC)
	if !res.Valid {
		t.Fatalf("yesterday should be accepted, errors = %v", res.Errors)
	}
}

func TestValidateScheduledActivityFarFutureWarns(t *testing.T) {
	a := model.ScheduledActivity{ActivityID: "x", ScheduledDate: dateOffset(120)}
	res := ValidateScheduledActivity(a, testDog(), testNow, time.UTC)
	if !res.Valid {
		t.Fatalf("far-future date must remain schedulable, errors = %v", res.Errors)
	}
	if !contains(res.Warnings, WarnFarFuture) {
		t.Fatalf("expected far-future warning, got %v", res.Warnings)
	}
}

func TestValidateScheduledActivityAccumulatesErrors(t *testing.T) {
	week := 60
	day := 7
	a := model.ScheduledActivity{
		ScheduledDate: "not-a-date",
		WeekNumber:    &week,
		DayOfWeek:     &day,
	}
	res := ValidateScheduledActivity(a, testDog(), testNow, time.UTC)
	if res.Valid {
		t.Fatal("expected invalid")
	}
	for _, want := range []string{ErrActivityIDMissing, ErrInvalidDateFormat, ErrWeekOutOfRange, ErrDayOutOfRange} {
		if !contains(res.Errors, want) {
			t.Errorf("missing error %q in %v", want, res.Errors)
		}
	}
}

func TestValidateScheduledActivityWeekDayBounds(t *testing.T) {
	for _, tt := range []struct {
		week, day int
		ok        bool
	}{
		{1, 0, true},
		{53, 6, true},
		{0, 0, false},
		{54, 0, false},
		{1, -1, false},
	} {
		w, d := tt.week, tt.day
		a := model.ScheduledActivity{ActivityID: "x", ScheduledDate: dateOffset(1), WeekNumber: &w, DayOfWeek: &d}
		res := ValidateScheduledActivity(a, testDog(), testNow, time.UTC)
		if res.Valid != tt.ok {
			t.Errorf("week=%d day=%d: valid = %v, want %v (%v)", w, d, res.Valid, tt.ok, res.Errors)
		}
	}
}
