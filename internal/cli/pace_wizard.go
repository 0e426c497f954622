package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/lenaweber/paceflow/internal/domain"
)

// runPaceWizard collects pace settings interactively and fills p in place.
// The course reference is already resolved by the caller.
func runPaceWizard(p *domain.CoursePace) error {
	var start, budget string
	var excludeWeekends bool
	var skipDays []string

	dayOptions := make([]huh.Option[string], 0, len(domain.WeekdayNames))
	for _, name := range domain.WeekdayNames {
		if name == "saturday" || name == "sunday" {
			continue
		}
		dayOptions = append(dayOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			dateInput("Start Date", "", &start),
			dayCountInput("Calendar-Day Budget (blank for none)", "30", &budget),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Skip weekends?").
				Affirmative("Yes").
				Negative("No").
				Value(&excludeWeekends),
			huh.NewMultiSelect[string]().
				Title("Additional weekdays to skip").
				Options(dayOptions...).
				Value(&skipDays),
		),
	).WithTheme(paceflowHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("pace wizard: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", start, err)
	}

	p.StartDate = startDate
	p.TimeToCompleteCalendarDays = parseNonNegativeInt(budget, 0)
	p.ExcludeWeekends = excludeWeekends
	p.SelectedDaysToSkip = skipDays
	return nil
}
