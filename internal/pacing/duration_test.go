package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDaysToPaceDuration_TenDays(t *testing.T) {
	assert.Equal(t, PaceDuration{Weeks: 1, Days: 3}, CalendarDaysToPaceDuration(10))
}

func TestCalendarDaysToPaceDuration_ExactWeeks(t *testing.T) {
	assert.Equal(t, PaceDuration{Weeks: 2, Days: 0}, CalendarDaysToPaceDuration(14))
}

func TestCalendarDaysToPaceDuration_Zero(t *testing.T) {
	assert.Equal(t, PaceDuration{}, CalendarDaysToPaceDuration(0))
}

func TestCalendarDaysToPaceDuration_NegativeClampsToZero(t *testing.T) {
	assert.Equal(t, PaceDuration{}, CalendarDaysToPaceDuration(-3))
}

func TestCalculatePaceDuration_InclusiveSpan(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
	// 10-day inclusive span = 1 week 3 days.
	assert.Equal(t, PaceDuration{Weeks: 1, Days: 3}, CalculatePaceDuration(start, end))
}

func TestCalculatePaceDuration_SameDay(t *testing.T) {
	d := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, PaceDuration{Weeks: 0, Days: 1}, CalculatePaceDuration(d, d))
}

func TestInclusiveDaySpan_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2022, 1, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2022, 1, 2, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 2, InclusiveDaySpan(start, end))
}

func TestInclusiveDaySpan_InvertedRangeIsZero(t *testing.T) {
	start := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, InclusiveDaySpan(start, end))
}
