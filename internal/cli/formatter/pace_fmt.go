package formatter

import (
	"fmt"
	"strings"

	"github.com/lenaweber/paceflow/internal/contract"
	"github.com/lenaweber/paceflow/internal/domain"
)

// FormatPaceSummary renders the pace settings card shown by "pace show".
func FormatPaceSummary(p *domain.CoursePace, proj *contract.PaceProjection) string {
	var b strings.Builder

	b.WriteString(Header("Course pace") + "\n")
	b.WriteString(Dim("Pace:          ") + TruncID(p.ID) + "\n")
	b.WriteString(Dim("State:         ") + PaceStatePill(p.WorkflowState) + "\n")
	b.WriteString(Dim("Starts:        ") + StyleFg.Render(p.StartDate.Format("2006-01-02")) + "\n")
	b.WriteString(Dim("Budget:        ") + StyleFg.Render(FormatCalendarDays(p.TimeToCompleteCalendarDays)) +
		Dim(fmt.Sprintf(" (%d calendar days)", p.TimeToCompleteCalendarDays)) + "\n")

	exclusions := describeExclusions(p)
	b.WriteString(Dim("Exclusions:    ") + exclusions + "\n")

	if proj != nil && proj.ProjectedEndDate != "" {
		b.WriteString(Dim("Projected end: ") + StyleFg.Render(proj.ProjectedEndDate) + "  " + BudgetIndicator(proj.WithinBudget) + "\n")
		b.WriteString(Dim("Usage:         ") + RenderBudgetBar(proj.CalendarDaysUsed, proj.BudgetDays, 20) + "\n")
	}

	return b.String()
}

func describeExclusions(p *domain.CoursePace) string {
	var parts []string
	if p.ExcludeWeekends {
		parts = append(parts, "weekends")
	}
	parts = append(parts, p.SelectedDaysToSkip...)
	if len(parts) == 0 {
		return Dim("none")
	}
	return StyleYellow.Render(strings.Join(parts, ", "))
}

// FormatProjection renders the full due-date projection table grouped by
// module, followed by the budget verdict line.
func FormatProjection(proj *contract.PaceProjection) string {
	var b strings.Builder

	headers := []string{"MODULE", "ITEM", "TYPE", "DAYS", "DUE"}
	rows := make([][]string, 0, len(proj.Items))
	lastModule := ""
	for _, item := range proj.Items {
		moduleCell := ""
		if item.ModuleName != lastModule {
			moduleCell = Bold(item.ModuleName)
			lastModule = item.ModuleName
		}
		rows = append(rows, []string{
			moduleCell,
			StyleFg.Render(item.Title),
			itemTypeBadge(item.ItemType),
			fmt.Sprintf("%d", item.Duration),
			StyleBlue.Render(item.DueDate),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if proj.ProjectedEndDate == "" {
		b.WriteString("\n" + Dim("No items to project.") + "\n")
		return b.String()
	}

	b.WriteString("\n" + BudgetIndicator(proj.WithinBudget))
	b.WriteString(Dim(fmt.Sprintf("  %s used of %s (ends %s)",
		FormatCalendarDays(proj.CalendarDaysUsed),
		FormatCalendarDays(proj.BudgetDays),
		proj.ProjectedEndDate)))
	b.WriteString("\n")
	return b.String()
}

// FormatValidation renders a one-line budget verdict.
func FormatValidation(res *contract.ValidationResult) string {
	if res.Valid {
		return BudgetIndicator(true) +
			Dim(fmt.Sprintf("  %d of %d calendar days used", res.CalendarDaysUsed, res.BudgetDays))
	}
	return BudgetIndicator(false) +
		Dim(fmt.Sprintf("  %d days over the %d-day budget", res.OverBy, res.BudgetDays))
}

func itemTypeBadge(itemType string) string {
	switch domain.ModuleItemType(itemType) {
	case domain.ItemAssignment:
		return StylePurple.Render("assignment")
	case domain.ItemDiscussion:
		return StyleBlue.Render("discussion")
	case domain.ItemQuiz:
		return StyleYellow.Render("quiz")
	case domain.ItemPage:
		return StyleGreen.Render("page")
	default:
		return StyleDim.Render(itemType)
	}
}
