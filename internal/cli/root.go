package cli

import (
	"github.com/lenaweber/paceflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses   service.CourseService
	Paces     service.PaceService
	Blackouts service.BlackoutService
	Import    service.ImportService

	// IsInteractive reports whether stdin is a terminal. It gates the
	// pace-creation wizard and the pace editor.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "paceflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "paceflow",
		Short: "Course pacing planner and due-date projector",
	}

	root.AddCommand(
		newCourseCmd(app),
		newPaceCmd(app),
		newBlackoutCmd(app),
	)

	return root
}
