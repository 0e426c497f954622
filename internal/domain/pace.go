package domain

import "time"

// CoursePace is a pacing plan for a course: a start date, a calendar-day
// budget, exclusion rules, and an ordered tree of modules and items.
type CoursePace struct {
	ID       string
	CourseID string

	StartDate                  time.Time
	TimeToCompleteCalendarDays int
	ExcludeWeekends            bool
	// SelectedDaysToSkip holds canonical lowercase weekday names
	// (see WeekdayNames), independent of ExcludeWeekends.
	SelectedDaysToSkip []string

	WorkflowState PaceWorkflowState
	Modules       []*PaceModule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Items flattens all module items into one sequence in module/position order.
// Modules and their items are assumed already sorted by Position.
func (p *CoursePace) Items() []*PaceItem {
	var items []*PaceItem
	for _, m := range p.Modules {
		items = append(items, m.Items...)
	}
	return items
}

// PaceModule is an ordered group of pace items within a pace.
type PaceModule struct {
	ID       string
	PaceID   string
	Name     string
	Position int
	Items    []*PaceItem
}

// PaceItem is a single schedulable unit: Duration is the count of working
// days allotted before its due date.
type PaceItem struct {
	ID             string
	ModuleID       string
	Title          string
	ModuleItemType ModuleItemType
	Duration       int
	Position       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
