package timeutil

import (
	"testing"
	"time"
)

func TestISOWeekRange(t *testing.T) {
	d := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5*366; i++ {
		w := ISOWeek(d)
		if w < 1 || w > 53 {
			t.Fatalf("ISOWeek(%s) = %d, want 1..53", d.Format("2006-01-02"), w)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestISOWeekJanuaryFourthAnchor(t *testing.T) {
	for year := 2018; year <= 2030; year++ {
		jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)

		// First Thursday of the year.
		d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for d.Weekday() != time.Thursday {
			d = d.AddDate(0, 0, 1)
		}
		if ISOWeek(d) != ISOWeek(jan4) {
			t.Errorf("year %d: first Thursday week = %d, Jan 4 week = %d", year, ISOWeek(d), ISOWeek(jan4))
		}
		if ISOWeek(jan4) != 1 {
			t.Errorf("year %d: ISOWeek(Jan 4) = %d, want 1", year, ISOWeek(jan4))
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday", time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC), "2025-03-10"},
		{"monday", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), "2025-03-10"},
		{"sunday maps six days back", time.Date(2025, time.March, 16, 23, 59, 59, 0, time.UTC), "2025-03-10"},
		{"year boundary", time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC), "2024-12-30"},
	}
	for _, tt := range tests {
		got := WeekStart(tt.in, time.UTC)
		if FormatDate(got) != tt.want {
			t.Errorf("%s: WeekStart = %s, want %s", tt.name, FormatDate(got), tt.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
			t.Errorf("%s: WeekStart not at midnight: %s", tt.name, got)
		}
		if got.Weekday() != time.Monday {
			t.Errorf("%s: WeekStart weekday = %s, want Monday", tt.name, got.Weekday())
		}
	}
}

func TestSameISOWeek(t *testing.T) {
	mon := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2025, time.March, 16, 23, 0, 0, 0, time.UTC)
	nextMon := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)

	if !SameISOWeek(mon, sun) {
		t.Error("monday and sunday of the same span should match")
	}
	if SameISOWeek(sun, nextMon) {
		t.Error("crossing the week boundary should not match")
	}
}

func TestMondayOfISOWeek(t *testing.T) {
	got := MondayOfISOWeek(2025, 11, time.UTC)
	if FormatDate(got) != "2025-03-10" {
		t.Fatalf("MondayOfISOWeek(2025, 11) = %s, want 2025-03-10", FormatDate(got))
	}
	if y, w := got.ISOWeek(); y != 2025 || w != 11 {
		t.Fatalf("round trip = (%d, %d), want (2025, 11)", y, w)
	}
	// Week 1 can start in the previous calendar year.
	got = MondayOfISOWeek(2026, 1, time.UTC)
	if FormatDate(got) != "2025-12-29" {
		t.Fatalf("MondayOfISOWeek(2026, 1) = %s, want 2025-12-29", FormatDate(got))
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-01", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(d) != "2025-07-01" {
		t.Fatalf("round trip = %s", FormatDate(d))
	}
	if _, err := ParseDate("07/01/2025", time.UTC); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}
