package formatter

import (
	"testing"
	"time"

	"github.com/lenaweber/paceflow/internal/contract"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleProjection() *contract.PaceProjection {
	return &contract.PaceProjection{
		PaceID:           "pace-1",
		StartDate:        "2021-09-01",
		ProjectedEndDate: "2021-09-07",
		CalendarDaysUsed: 7,
		BudgetDays:       14,
		WithinBudget:     true,
		Weeks:            1,
		Days:             0,
		Items: []contract.ItemDueDate{
			{ModuleName: "Week 1", Title: "Reading", ItemType: "page", Duration: 1, DueDate: "2021-09-02"},
			{ModuleName: "Week 1", Title: "Quiz 1", ItemType: "quiz", Duration: 2, DueDate: "2021-09-04"},
			{ModuleName: "Week 2", Title: "Essay", ItemType: "assignment", Duration: 3, DueDate: "2021-09-07"},
		},
	}
}

func TestFormatProjection_GroupsByModule(t *testing.T) {
	out := FormatProjection(sampleProjection())

	assert.Contains(t, out, "Week 1")
	assert.Contains(t, out, "Week 2")
	assert.Contains(t, out, "Quiz 1")
	assert.Contains(t, out, "2021-09-07")
	assert.Contains(t, out, "FITS BUDGET")
	// Module name appears once per group, not once per row.
	assert.Equal(t, 1, countOccurrences(out, "Week 2"))
}

func TestFormatProjection_OverBudget(t *testing.T) {
	proj := sampleProjection()
	proj.WithinBudget = false
	proj.BudgetDays = 4

	out := FormatProjection(proj)
	assert.Contains(t, out, "OVER BUDGET")
}

func TestFormatProjection_NoItems(t *testing.T) {
	proj := &contract.PaceProjection{PaceID: "pace-1", BudgetDays: 7}
	out := FormatProjection(proj)
	assert.Contains(t, out, "No items to project")
}

func TestFormatValidation(t *testing.T) {
	out := FormatValidation(&contract.ValidationResult{Valid: true, CalendarDaysUsed: 7, BudgetDays: 14})
	assert.Contains(t, out, "FITS BUDGET")
	assert.Contains(t, out, "7 of 14 calendar days")

	out = FormatValidation(&contract.ValidationResult{Valid: false, CalendarDaysUsed: 9, BudgetDays: 7, OverBy: 2})
	assert.Contains(t, out, "OVER BUDGET")
	assert.Contains(t, out, "2 days over")
}

func TestFormatPaceSummary_ListsExclusions(t *testing.T) {
	p := &domain.CoursePace{
		ID:                         "pace-1",
		StartDate:                  time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeToCompleteCalendarDays: 10,
		ExcludeWeekends:            true,
		SelectedDaysToSkip:         []string{"friday"},
		WorkflowState:              domain.PaceUnpublished,
	}

	out := FormatPaceSummary(p, nil)
	assert.Contains(t, out, "2021-09-01")
	assert.Contains(t, out, "weekends, friday")
	assert.Contains(t, out, "1w 3d")
	assert.Contains(t, out, "Unpublished")
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
