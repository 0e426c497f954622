package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lenaweber/paceflow/internal/cli/formatter"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/spf13/cobra"
)

func resolveCourseID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("course ID is required")
	}

	courses, err := app.Courses.List(ctx, true)
	if err != nil {
		return "", err
	}

	// 1. Exact course-code match (case-insensitive)
	for _, c := range courses {
		if strings.EqualFold(c.Code, input) {
			return c.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, c := range courses {
		if c.ID == input {
			return c.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, c := range courses {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("course not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("course ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseShowCmd(app),
		newCourseArchiveCmd(app),
		newCourseRemoveCmd(app),
		newCourseImportCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var code, name, term string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new course",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Course{
				Code: strings.ToUpper(code),
				Name: name,
				Term: term,
			}

			if err := app.Courses.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Created course %s [%s]\n", c.Name, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Course code (2-6 uppercase letters + 2-4 digits, e.g. BIO101)")
	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&term, "term", "", "Academic term (e.g. Fall 2026)")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(courses) == 0 {
				fmt.Println("No courses found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCourseList(courses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived courses")

	return cmd
}

func newCourseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show COURSE",
		Short: "Show course details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courseID, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Courses.GetByID(ctx, courseID)
			if err != nil {
				return err
			}
			blackouts, err := app.Blackouts.ListByCourse(ctx, courseID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatCourseDetail(c, blackouts))
			return nil
		},
	}
}

func newCourseArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive COURSE",
		Short: "Archive a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courseID, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Courses.Archive(ctx, courseID); err != nil {
				return err
			}
			fmt.Printf("Archived course %s\n", courseID)
			return nil
		},
	}
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove COURSE",
		Short: "Remove a course and its pace data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courseID, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Courses.Delete(ctx, courseID, force); err != nil {
				return err
			}
			fmt.Printf("Removed course %s\n", courseID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the course is not archived")

	return cmd
}

func newCourseImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a course from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportCourse(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported course %s [%s] with %d modules, %d items, %d blackout dates\n",
				result.Course.Name, result.Course.Code,
				result.ModuleCount, result.ItemCount, result.BlackoutCount)
			return nil
		},
	}
}
