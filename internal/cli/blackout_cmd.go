package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lenaweber/paceflow/internal/cli/formatter"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/spf13/cobra"
)

func newBlackoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blackout",
		Short: "Manage course blackout dates",
	}

	cmd.AddCommand(
		newBlackoutAddCmd(app),
		newBlackoutListCmd(app),
		newBlackoutRemoveCmd(app),
	)

	return cmd
}

func newBlackoutAddCmd(app *App) *cobra.Command {
	var title, start, end string

	cmd := &cobra.Command{
		Use:   "add COURSE",
		Short: "Add a blackout date range to a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courseID, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			startDate, err := parseDateFlag(start, "start")
			if err != nil {
				return err
			}
			endDate := startDate
			if end != "" {
				endDate, err = parseDateFlag(end, "end")
				if err != nil {
					return err
				}
			}

			b := &domain.BlackoutDate{
				CourseID:   courseID,
				EventTitle: title,
				StartDate:  startDate,
				EndDate:    endDate,
			}
			if err := app.Blackouts.Add(ctx, b); err != nil {
				return err
			}

			fmt.Printf("Added blackout %q (%s to %s)\n", title,
				startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (e.g. Spring Break)")
	cmd.Flags().StringVar(&start, "start", "", "First blocked day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last blocked day (YYYY-MM-DD, defaults to start)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newBlackoutListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list COURSE",
		Short: "List a course's blackout dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courseID, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			blackouts, err := app.Blackouts.ListByCourse(ctx, courseID)
			if err != nil {
				return err
			}

			if len(blackouts) == 0 {
				fmt.Println("No blackout dates.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatBlackoutTable(blackouts))
			return nil
		},
	}
}

func newBlackoutRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove COURSE ID",
		Short: "Remove a blackout date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courseID, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			blackoutID, err := resolveBlackoutID(ctx, app, courseID, args[1])
			if err != nil {
				return err
			}
			if err := app.Blackouts.Remove(ctx, blackoutID); err != nil {
				return err
			}
			fmt.Printf("Removed blackout %s\n", blackoutID)
			return nil
		},
	}
}

func resolveBlackoutID(ctx context.Context, app *App, courseID, input string) (string, error) {
	blackouts, err := app.Blackouts.ListByCourse(ctx, courseID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, b := range blackouts {
		if b.ID == input {
			return b.ID, nil
		}
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("blackout not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("blackout ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
