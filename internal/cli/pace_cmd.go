package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lenaweber/paceflow/internal/cli/formatter"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/pacing"
	"github.com/spf13/cobra"
)

// resolvePaceByCourse looks up the pace attached to a course reference
// (code, UUID, or UUID prefix).
func resolvePaceByCourse(ctx context.Context, app *App, input string) (*domain.CoursePace, error) {
	courseID, err := resolveCourseID(ctx, app, input)
	if err != nil {
		return nil, err
	}
	return app.Paces.GetByCourse(ctx, courseID)
}

func newPaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pace",
		Short: "Manage course paces",
	}

	cmd.AddCommand(
		newPaceCreateCmd(app),
		newPaceShowCmd(app),
		newPaceProjectCmd(app),
		newPaceValidateCmd(app),
		newPaceSetBudgetCmd(app),
		newPaceSetDurationCmd(app),
		newPaceDistributeCmd(app),
		newPaceWeightCmd(app),
		newPacePublishCmd(app),
		newPaceEditCmd(app),
	)

	return cmd
}

func newPaceCreateCmd(app *App) *cobra.Command {
	var start string
	var budget int
	var excludeWeekends bool
	var skipDays []string

	cmd := &cobra.Command{
		Use:   "create COURSE",
		Short: "Create a pace for a course",
		Long: "Create a pace for a course. When --start is omitted on an " +
			"interactive terminal, a guided wizard collects the pace settings.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courseID, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			p := &domain.CoursePace{CourseID: courseID}

			if start == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--start is required (or run interactively for the wizard)")
				}
				if err := runPaceWizard(p); err != nil {
					return err
				}
			} else {
				startDate, err := parseDateFlag(start, "start")
				if err != nil {
					return err
				}
				p.StartDate = startDate
				p.TimeToCompleteCalendarDays = budget
				p.ExcludeWeekends = excludeWeekends
				p.SelectedDaysToSkip = normalizeSkipDays(skipDays)
			}

			if err := app.Paces.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Created pace %s starting %s (%s budget)\n",
				p.ID[:8], p.StartDate.Format("2006-01-02"),
				formatter.FormatCalendarDays(p.TimeToCompleteCalendarDays))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Pace start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&budget, "budget", 0, "Calendar-day budget (0 for none)")
	addExclusionFlags(cmd.Flags(), &excludeWeekends, &skipDays)

	return cmd
}

func normalizeSkipDays(days []string) []string {
	var out []string
	for _, d := range days {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}

func newPaceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show COURSE",
		Short: "Show pace settings and budget fit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			proj, err := app.Paces.Project(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPaceSummary(p, proj))
			return nil
		},
	}
}

func newPaceProjectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "project COURSE",
		Short: "Project due dates for every pace item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			proj, err := app.Paces.Project(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjection(proj))
			return nil
		},
	}
}

func newPaceValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate COURSE",
		Short: "Check the pace against its calendar-day budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Paces.Validate(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatValidation(res))
			if !res.Valid {
				// Non-zero exit so scripts can gate publishing on fit.
				cmd.SilenceUsage = true
				return fmt.Errorf("pace exceeds budget by %s", formatter.FormatCalendarDays(res.OverBy))
			}
			return nil
		},
	}
}

func newPaceSetBudgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-budget COURSE DAYS",
		Short: "Set the pace's calendar-day budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day count %q", args[1])
			}
			if err := app.Paces.SetBudget(ctx, p.ID, days); err != nil {
				return err
			}
			fmt.Printf("Budget set to %s\n", formatter.FormatCalendarDays(days))
			return nil
		},
	}
}

func newPaceSetDurationCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-duration COURSE ITEM DAYS",
		Short: "Set one item's working-day duration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(p, args[1])
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid day count %q", args[2])
			}
			if err := app.Paces.SetItemDuration(ctx, p.ID, itemID, days); err != nil {
				return err
			}
			fmt.Printf("Set item %s duration to %s\n", itemID[:8], formatter.WorkingDays(days))
			return nil
		},
	}
}

// resolveItemID matches an item reference against the pace's items by exact
// ID, then ID prefix, then exact title (case-insensitive).
func resolveItemID(p *domain.CoursePace, input string) (string, error) {
	items := p.Items()
	for _, item := range items {
		if item.ID == input {
			return item.ID, nil
		}
	}

	var matches []string
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, item := range items {
		if strings.EqualFold(item.Title, input) {
			return item.ID, nil
		}
	}
	return "", fmt.Errorf("pace item not found: %q", input)
}

func newPaceDistributeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "distribute COURSE",
		Short: "Spread the budget evenly across all pace items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Paces.DistributeBudget(ctx, p.ID)
			if err != nil {
				return err
			}

			fmt.Printf("Distributed budget across %d items: %s each",
				res.ItemsUpdated, formatter.WorkingDays(res.Duration))
			if res.Remainder > 0 {
				fmt.Printf(" (first %d items get one extra day)", res.Remainder)
			}
			fmt.Println()
			return nil
		},
	}
}

func newPaceWeightCmd(app *App) *cobra.Command {
	var assignment, discussion, quiz, page int

	cmd := &cobra.Command{
		Use:   "weight COURSE",
		Short: "Assign durations per item type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			var w pacing.ItemWeighting
			if cmd.Flags().Changed("assignment") {
				w.Assignment = &assignment
			}
			if cmd.Flags().Changed("discussion") {
				w.Discussion = &discussion
			}
			if cmd.Flags().Changed("quiz") {
				w.Quiz = &quiz
			}
			if cmd.Flags().Changed("page") {
				w.Page = &page
			}
			if w.Assignment == nil && w.Discussion == nil && w.Quiz == nil && w.Page == nil {
				return fmt.Errorf("provide at least one of --assignment, --discussion, --quiz, --page")
			}

			updated, err := app.Paces.ApplyWeighting(ctx, p.ID, w)
			if err != nil {
				return err
			}

			fmt.Printf("Weighted %d items\n", len(updated.Items()))
			return nil
		},
	}

	cmd.Flags().IntVar(&assignment, "assignment", 0, "Working days per assignment")
	cmd.Flags().IntVar(&discussion, "discussion", 0, "Working days per discussion")
	cmd.Flags().IntVar(&quiz, "quiz", 0, "Working days per quiz")
	cmd.Flags().IntVar(&page, "page", 0, "Working days per page")

	return cmd
}

func newPacePublishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "publish COURSE",
		Short: "Publish a pace that fits its budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Paces.Publish(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Published pace %s\n", p.ID[:8])
			return nil
		},
	}
}

func newPaceEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit COURSE",
		Short: "Interactively adjust item durations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("pace edit requires an interactive terminal")
			}

			ctx := context.Background()
			p, err := resolvePaceByCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			blackouts, err := app.Blackouts.ListByCourse(ctx, p.CourseID)
			if err != nil {
				return err
			}

			model := newEditorModel(p, blackouts)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("running pace editor: %w", err)
			}

			editor, ok := final.(editorModel)
			if !ok || !editor.saved {
				fmt.Println("No changes saved.")
				return nil
			}

			changed := editor.ChangedDurations()
			for itemID, duration := range changed {
				if err := app.Paces.SetItemDuration(ctx, p.ID, itemID, duration); err != nil {
					return err
				}
			}

			fmt.Printf("Saved %d duration changes\n", len(changed))
			return nil
		},
	}
}
