package domain

import (
	"fmt"
	"time"
)

// BlackoutDate is an inclusive date interval excluded from due-date
// scheduling (holidays, exam weeks, breaks).
type BlackoutDate struct {
	ID         string
	CourseID   string
	EventTitle string
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks that the interval is well-formed.
func (b *BlackoutDate) Validate() error {
	if b.EventTitle == "" {
		return fmt.Errorf("blackout event title is required")
	}
	if b.EndDate.Before(b.StartDate) {
		return fmt.Errorf("blackout end date %s is before start date %s",
			b.EndDate.Format("2006-01-02"), b.StartDate.Format("2006-01-02"))
	}
	return nil
}

// Contains reports whether d falls inside the interval, inclusive of both
// endpoints. Only the calendar date of d is considered.
func (b *BlackoutDate) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(b.StartDate.Year(), b.StartDate.Month(), b.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.EndDate.Year(), b.EndDate.Month(), b.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
