package pacing

import "time"

// PaceDuration is a calendar-day count split into whole weeks plus a
// remainder of days. For any non-negative input, Weeks*7+Days reconstructs
// the original count and Days is in [0,6].
type PaceDuration struct {
	Weeks int
	Days  int
}

// CalendarDaysToPaceDuration converts a calendar-day count to weeks+days.
// Negative input is clamped to zero.
func CalendarDaysToPaceDuration(calendarDays int) PaceDuration {
	if calendarDays < 0 {
		calendarDays = 0
	}
	return PaceDuration{
		Weeks: calendarDays / 7,
		Days:  calendarDays % 7,
	}
}

// CalendarDays reconstructs the flat day count.
func (d PaceDuration) CalendarDays() int {
	return d.Weeks*7 + d.Days
}

// CalculatePaceDuration converts the inclusive day span between two dates
// to weeks+days. end before start yields a zero duration.
func CalculatePaceDuration(start, end time.Time) PaceDuration {
	return CalendarDaysToPaceDuration(InclusiveDaySpan(start, end))
}

// InclusiveDaySpan returns the inclusive count of calendar days between two
// dates: same day is 1, consecutive days are 2. Only calendar dates are
// considered; time-of-day and zone offsets are discarded. end before start
// returns 0.
func InclusiveDaySpan(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
