package domain

import (
	"fmt"
	"regexp"
	"time"
)

var courseCodePattern = regexp.MustCompile(`^[A-Z]{2,6}[0-9]{2,4}$`)

type Course struct {
	ID         string
	Code       string
	Name       string
	Term       string
	Status     CourseStatus
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateCode checks that Code is non-empty and matches the required format:
// 2-6 uppercase letters followed by 2-4 digits (e.g. BIO101, MATH0234).
func (c *Course) ValidateCode() error {
	if c.Code == "" {
		return fmt.Errorf("course code is required (use --code flag)")
	}
	if !courseCodePattern.MatchString(c.Code) {
		return fmt.Errorf("course code %q must be 2-6 uppercase letters followed by 2-4 digits (e.g. BIO101)", c.Code)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers Code; if empty it truncates ID to 8 characters.
func (c *Course) DisplayID() string {
	if c.Code != "" {
		return c.Code
	}
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
