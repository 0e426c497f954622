package pacing

import (
	"strings"
	"time"

	"github.com/lenaweber/paceflow/internal/domain"
)

// Exclusions bundles the rules that make a calendar day ineligible for
// due-date scheduling: the weekend flag, a per-weekday skip set, and
// blackout intervals.
type Exclusions struct {
	ExcludeWeekends    bool
	SelectedDaysToSkip []string
	BlackoutDates      []domain.BlackoutDate

	skipSet map[time.Weekday]bool
}

// NewExclusions builds an Exclusions with the weekday skip set resolved.
// Unrecognized weekday names are ignored.
func NewExclusions(excludeWeekends bool, selectedDaysToSkip []string, blackoutDates []domain.BlackoutDate) Exclusions {
	skip := make(map[time.Weekday]bool, len(selectedDaysToSkip))
	for _, name := range selectedDaysToSkip {
		if wd, ok := parseWeekday(name); ok {
			skip[wd] = true
		}
	}
	return Exclusions{
		ExcludeWeekends:    excludeWeekends,
		SelectedDaysToSkip: selectedDaysToSkip,
		BlackoutDates:      blackoutDates,
		skipSet:            skip,
	}
}

// Excluded reports whether d is ineligible for scheduling.
func (e Exclusions) Excluded(d time.Time) bool {
	wd := d.Weekday()
	if e.ExcludeWeekends && (wd == time.Saturday || wd == time.Sunday) {
		return true
	}
	if e.skipSet[wd] {
		return true
	}
	for i := range e.BlackoutDates {
		if e.BlackoutDates[i].Contains(d) {
			return true
		}
	}
	return false
}

func parseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return time.Sunday, false
}

// GetDueDates walks the item sequence from startDate and assigns one due
// date per item: the cursor begins on the first eligible day on or after
// startDate, and each item advances it by the item's Duration in eligible
// days. Due dates are non-decreasing in item order. An item with Duration 0
// is due on the cursor's current day.
func GetDueDates(
	items []*domain.PaceItem,
	excludeWeekends bool,
	selectedDaysToSkip []string,
	blackoutDates []domain.BlackoutDate,
	startDate time.Time,
) map[string]time.Time {
	excl := NewExclusions(excludeWeekends, selectedDaysToSkip, blackoutDates)

	dueDates := make(map[string]time.Time, len(items))
	cursor := FirstEligibleOnOrAfter(startDate, excl)
	for _, item := range items {
		cursor = AddEligibleDays(cursor, item.Duration, excl)
		dueDates[item.ID] = cursor
	}
	return dueDates
}

// maxEligibleScan bounds eligibility searches so a fully-excluded calendar
// (e.g. every weekday skipped) terminates instead of walking forever.
const maxEligibleScan = 3660

// FirstEligibleOnOrAfter returns the first eligible day on or after d.
// If no eligible day exists within the scan horizon, d itself is returned.
func FirstEligibleOnOrAfter(d time.Time, excl Exclusions) time.Time {
	cur := dateOnly(d)
	for i := 0; i < maxEligibleScan; i++ {
		if !excl.Excluded(cur) {
			return cur
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return dateOnly(d)
}

// AddEligibleDays advances d by n eligible days, skipping excluded days.
// n <= 0 returns d unchanged.
func AddEligibleDays(d time.Time, n int, excl Exclusions) time.Time {
	cur := dateOnly(d)
	remaining := n
	for i := 0; remaining > 0 && i < maxEligibleScan; i++ {
		cur = cur.AddDate(0, 0, 1)
		if !excl.Excluded(cur) {
			remaining--
		}
	}
	return cur
}

// CountEligibleDaysBetween counts the eligible days strictly between start
// and end (neither endpoint included).
func CountEligibleDaysBetween(start, end time.Time, excl Exclusions) int {
	s := dateOnly(start)
	e := dateOnly(end)
	count := 0
	for cur := s.AddDate(0, 0, 1); cur.Before(e); cur = cur.AddDate(0, 0, 1) {
		if !excl.Excluded(cur) {
			count++
		}
	}
	return count
}
