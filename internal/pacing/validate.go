package pacing

import (
	"time"

	"github.com/lenaweber/paceflow/internal/domain"
)

// ProjectedEndDate runs the due-date projection for items under the pace's
// exclusion rules and returns the latest due date. ok is false when items
// is empty.
func ProjectedEndDate(pace *domain.CoursePace, items []*domain.PaceItem, blackouts []domain.BlackoutDate) (time.Time, bool) {
	if len(items) == 0 {
		return time.Time{}, false
	}
	dueDates := GetDueDates(items, pace.ExcludeWeekends, pace.SelectedDaysToSkip, blackouts, pace.StartDate)

	var end time.Time
	for _, d := range dueDates {
		if d.After(end) {
			end = d
		}
	}
	return end, true
}

// IsTimeToCompleteValid reports whether the projected completion date for
// items fits within the pace's calendar-day budget: the inclusive span from
// the pace start to the latest projected due date must not exceed
// TimeToCompleteCalendarDays. An empty item list always fits.
func IsTimeToCompleteValid(pace *domain.CoursePace, items []*domain.PaceItem, blackouts []domain.BlackoutDate) bool {
	end, ok := ProjectedEndDate(pace, items, blackouts)
	if !ok {
		return true
	}
	return InclusiveDaySpan(pace.StartDate, end) <= pace.TimeToCompleteCalendarDays
}

// TimeToCompleteFromItemDurations flattens all module items, projects their
// due dates, and returns the zero-based day offset of the latest due date
// from the pace start (inclusive span minus one). A pace with no items
// takes zero days.
func TimeToCompleteFromItemDurations(pace *domain.CoursePace, blackouts []domain.BlackoutDate) int {
	end, ok := ProjectedEndDate(pace, pace.Items(), blackouts)
	if !ok {
		return 0
	}
	return InclusiveDaySpan(pace.StartDate, end) - 1
}

// ItemDurationSplit is a per-item working-day allotment: Duration for every
// item, with Remainder working days left over to distribute.
type ItemDurationSplit struct {
	Duration  int
	Remainder int
}

// ItemDurationsFromTimeToComplete divides the eligible working days inside a
// calendar-day window evenly across itemsLength items.
//
// The window opens on the first eligible day strictly after the pace start
// and closes at start+calendarDays; eligible days strictly between the two
// are counted under the pace's exclusion rules. Degenerate inputs
// (calendarDays < 1, zero start date, an inverted window, or
// itemsLength <= 0) return the zero split.
func ItemDurationsFromTimeToComplete(pace *domain.CoursePace, blackouts []domain.BlackoutDate, calendarDays, itemsLength int) ItemDurationSplit {
	if calendarDays < 1 || pace.StartDate.IsZero() || itemsLength <= 0 {
		return ItemDurationSplit{}
	}

	excl := NewExclusions(pace.ExcludeWeekends, pace.SelectedDaysToSkip, blackouts)

	start := FirstEligibleOnOrAfter(pace.StartDate.AddDate(0, 0, 1), excl)
	end := dateOnly(pace.StartDate).AddDate(0, 0, calendarDays)
	if start.After(end) {
		return ItemDurationSplit{}
	}

	eligible := CountEligibleDaysBetween(start, end, excl)
	return ItemDurationSplit{
		Duration:  eligible / itemsLength,
		Remainder: eligible % itemsLength,
	}
}
