package utils

import (
	"time"

	"main/model"
)

// DateLayout is the wire format for calendar dates. All date arithmetic in
// the stats engine happens on these strings; they compare correctly with <
// and > because the layout is lexicographically ordered.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Today returns the calendar date of the supplied instant in its own
// location. Callers inject the clock so computations stay deterministic.
func Today(now time.Time) string {
	return FormatDate(now)
}

// DaysAgo returns the date n calendar days before now. n=0 is today.
func DaysAgo(now time.Time, n int) string {
	return FormatDate(now.AddDate(0, 0, -n))
}

// AddDays shifts a date string by n days. Returns an error for malformed
// input rather than guessing.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// StartOfWeek returns the Monday of the current week. Sunday counts as the
// last day of the previous week, per ISO convention.
func StartOfWeek(now time.Time) string {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	return FormatDate(now.AddDate(0, 0, -offset))
}

func StartOfMonth(now time.Time) string {
	return FormatDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
}

func StartOfYear(now time.Time) string {
	return FormatDate(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()))
}

// DateRange resolves a reporting period to an inclusive {start, end} pair.
// End is always today.
func DateRange(period model.TimePeriod, now time.Time) (start, end string) {
	end = Today(now)
	switch period {
	case model.PeriodDay:
		start = end
	case model.PeriodWeek:
		start = StartOfWeek(now)
	case model.PeriodMonth:
		start = StartOfMonth(now)
	case model.PeriodYear:
		start = StartOfYear(now)
	default:
		start = StartOfWeek(now)
	}
	return start, end
}

// PreviousPeriodRange returns the immediately preceding period of equal
// semantic length: day and week shift by a fixed day count, month and year
// use calendar arithmetic. Month/year shifts that land on a nonexistent day
// (e.g. March 31 back one month) clamp to the last day of the target month
// instead of rolling over.
func PreviousPeriodRange(period model.TimePeriod, now time.Time) (start, end string) {
	curStart, curEnd := DateRange(period, now)
	s, errS := ParseDate(curStart)
	e, errE := ParseDate(curEnd)
	if errS != nil || errE != nil {
		return curStart, curEnd
	}

	switch period {
	case model.PeriodDay:
		s, e = s.AddDate(0, 0, -1), e.AddDate(0, 0, -1)
	case model.PeriodWeek:
		s, e = s.AddDate(0, 0, -7), e.AddDate(0, 0, -7)
	case model.PeriodMonth:
		s, e = shiftMonthsClamped(s, -1), shiftMonthsClamped(e, -1)
	case model.PeriodYear:
		s, e = shiftYearsClamped(s, -1), shiftYearsClamped(e, -1)
	default:
		s, e = s.AddDate(0, 0, -7), e.AddDate(0, 0, -7)
	}
	return FormatDate(s), FormatDate(e)
}

func shiftMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func shiftYearsClamped(t time.Time, years int) time.Time {
	first := time.Date(t.Year()+years, t.Month(), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// DatesBetween returns every date from start to end inclusive, ascending.
// Empty when start > end or either bound is malformed.
func DatesBetween(start, end string) []string {
	s, errS := ParseDate(start)
	e, errE := ParseDate(end)
	if errS != nil || errE != nil || s.After(e) {
		return nil
	}
	var dates []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates
}

// DaysBetween counts the calendar days separating two dates. The result is
// an absolute difference, so argument order does not matter.
func DaysBetween(start, end string) int {
	s, errS := ParseDate(start)
	e, errE := ParseDate(end)
	if errS != nil || errE != nil {
		return 0
	}
	days := int(e.Sub(s).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}
