package utils

import (
	"testing"
	"time"

	"main/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestTodayAndDaysAgo(t *testing.T) {
	now := date(2024, time.January, 7)

	if got := Today(now); got != "2024-01-07" {
		t.Errorf("Today() = %q, want 2024-01-07", got)
	}
	if got := DaysAgo(now, 0); got != "2024-01-07" {
		t.Errorf("DaysAgo(0) = %q, want 2024-01-07", got)
	}
	if got := DaysAgo(now, 7); got != "2023-12-31" {
		t.Errorf("DaysAgo(7) = %q, want 2023-12-31", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"monday maps to itself", date(2024, time.January, 1), "2024-01-01"},
		{"wednesday maps back to monday", date(2024, time.January, 3), "2024-01-01"},
		{"sunday belongs to previous week", date(2024, time.January, 7), "2024-01-01"},
		{"saturday same week", date(2024, time.January, 6), "2024-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.now); got != tt.want {
				t.Errorf("StartOfWeek(%s) = %q, want %q", Today(tt.now), got, tt.want)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	now := date(2024, time.March, 15) // a Friday

	tests := []struct {
		period model.TimePeriod
		start  string
		end    string
	}{
		{model.PeriodDay, "2024-03-15", "2024-03-15"},
		{model.PeriodWeek, "2024-03-11", "2024-03-15"},
		{model.PeriodMonth, "2024-03-01", "2024-03-15"},
		{model.PeriodYear, "2024-01-01", "2024-03-15"},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end := DateRange(tt.period, now)
			if start != tt.start || end != tt.end {
				t.Errorf("DateRange(%s) = {%s, %s}, want {%s, %s}", tt.period, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestPreviousPeriodRange(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		period model.TimePeriod
		start  string
		end    string
	}{
		{"day shifts one back", date(2024, time.March, 15), model.PeriodDay, "2024-03-14", "2024-03-14"},
		{"week shifts seven back", date(2024, time.March, 15), model.PeriodWeek, "2024-03-04", "2024-03-08"},
		{"month uses calendar arithmetic", date(2024, time.March, 15), model.PeriodMonth, "2024-02-01", "2024-02-15"},
		{"month end clamps instead of rolling over", date(2024, time.March, 31), model.PeriodMonth, "2024-02-01", "2024-02-29"},
		{"year end clamps leap day", date(2024, time.February, 29), model.PeriodYear, "2023-01-01", "2023-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PreviousPeriodRange(tt.period, tt.now)
			if start != tt.start || end != tt.end {
				t.Errorf("PreviousPeriodRange(%s) = {%s, %s}, want {%s, %s}", tt.period, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestDatesBetween(t *testing.T) {
	got := DatesBetween("2024-01-30", "2024-02-02")
	want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	if len(got) != len(want) {
		t.Fatalf("DatesBetween returned %d dates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DatesBetween[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := DatesBetween("2024-02-02", "2024-01-30"); got != nil {
		t.Errorf("inverted range should be empty, got %v", got)
	}
	if got := DatesBetween("not-a-date", "2024-01-30"); got != nil {
		t.Errorf("malformed start should be empty, got %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("2024-01-01", "2024-01-08"); got != 7 {
		t.Errorf("DaysBetween = %d, want 7", got)
	}
	// Commutative: absolute difference regardless of argument order.
	if DaysBetween("2024-01-08", "2024-01-01") != DaysBetween("2024-01-01", "2024-01-08") {
		t.Error("DaysBetween is not commutative")
	}
	if got := DaysBetween("2024-01-01", "2024-01-01"); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-03-01", -1)
	if err != nil {
		t.Fatalf("AddDays returned error: %v", err)
	}
	if got != "2024-02-29" {
		t.Errorf("AddDays = %q, want 2024-02-29", got)
	}
	if _, err := AddDays("03/01/2024", 1); err == nil {
		t.Error("expected error for malformed date")
	}
}
