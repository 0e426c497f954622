package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lenaweber/paceflow/internal/domain"
)

var testCodeCounter atomic.Int64

// Course options
type CourseOption func(*domain.Course)

func WithTerm(term string) CourseOption {
	return func(c *domain.Course) {
		c.Term = term
	}
}

func WithCourseStatus(s domain.CourseStatus) CourseOption {
	return func(c *domain.Course) {
		c.Status = s
	}
}

func WithCode(code string) CourseOption {
	return func(c *domain.Course) {
		c.Code = code
	}
}

func defaultCode(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testCodeCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestCourse(name string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC()
	c := &domain.Course{
		ID:        uuid.New().String(),
		Code:      defaultCode(name),
		Name:      name,
		Term:      "Fall 2022",
		Status:    domain.CourseActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pace options
type PaceOption func(*domain.CoursePace)

func WithStartDate(d time.Time) PaceOption {
	return func(p *domain.CoursePace) {
		p.StartDate = d
	}
}

func WithCalendarDays(n int) PaceOption {
	return func(p *domain.CoursePace) {
		p.TimeToCompleteCalendarDays = n
	}
}

func WithExcludeWeekends() PaceOption {
	return func(p *domain.CoursePace) {
		p.ExcludeWeekends = true
	}
}

func WithSkipDays(days ...string) PaceOption {
	return func(p *domain.CoursePace) {
		p.SelectedDaysToSkip = days
	}
}

func WithWorkflowState(s domain.PaceWorkflowState) PaceOption {
	return func(p *domain.CoursePace) {
		p.WorkflowState = s
	}
}

func NewTestPace(courseID string, opts ...PaceOption) *domain.CoursePace {
	now := time.Now().UTC()
	p := &domain.CoursePace{
		ID:                         uuid.New().String(),
		CourseID:                   courseID,
		StartDate:                  time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeToCompleteCalendarDays: 30,
		WorkflowState:              domain.PaceUnpublished,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestModule creates a pace module with items of the given durations,
// all typed as assignments unless retyped by the caller.
func NewTestModule(paceID, name string, position int, durations ...int) *domain.PaceModule {
	m := &domain.PaceModule{
		ID:       uuid.New().String(),
		PaceID:   paceID,
		Name:     name,
		Position: position,
	}
	for i, d := range durations {
		m.Items = append(m.Items, NewTestItem(m.ID, fmt.Sprintf("%s item %d", name, i+1), i, d))
	}
	return m
}

func NewTestItem(moduleID, title string, position, duration int) *domain.PaceItem {
	now := time.Now().UTC()
	return &domain.PaceItem{
		ID:             uuid.New().String(),
		ModuleID:       moduleID,
		Title:          title,
		ModuleItemType: domain.ItemAssignment,
		Duration:       duration,
		Position:       position,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func NewTestBlackout(courseID, title string, start, end time.Time) *domain.BlackoutDate {
	now := time.Now().UTC()
	return &domain.BlackoutDate{
		ID:         uuid.New().String(),
		CourseID:   courseID,
		EventTitle: title,
		StartDate:  start,
		EndDate:    end,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
