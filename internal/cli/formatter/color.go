package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lenaweber/paceflow/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BudgetIndicator returns a colored fit indicator for a budget check.
func BudgetIndicator(withinBudget bool) string {
	if withinBudget {
		return StyleGreen.Render("● FITS BUDGET")
	}
	return StyleRed.Render("● OVER BUDGET")
}

// PaceStatePill returns a colored indicator for a pace workflow state.
func PaceStatePill(state domain.PaceWorkflowState) string {
	switch state {
	case domain.PaceActive:
		return StyleGreen.Render("● Active")
	case domain.PaceUnpublished:
		return StyleYellow.Render("○ Unpublished")
	case domain.PaceArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(state))
	}
}

// CourseStatusPill returns a colored indicator for a course status.
func CourseStatusPill(status domain.CourseStatus) string {
	switch status {
	case domain.CourseActive:
		return StyleGreen.Render("● Active")
	case domain.CourseArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
