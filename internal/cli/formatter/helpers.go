package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lenaweber/paceflow/internal/pacing"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatPaceDuration renders a weeks+days pair like "2w 3d". Zero weeks or
// days are dropped; a zero duration renders as "0d".
func FormatPaceDuration(d pacing.PaceDuration) string {
	if d.Weeks > 0 && d.Days > 0 {
		return fmt.Sprintf("%dw %dd", d.Weeks, d.Days)
	}
	if d.Weeks > 0 {
		return fmt.Sprintf("%dw", d.Weeks)
	}
	return fmt.Sprintf("%dd", d.Days)
}

// FormatCalendarDays renders a flat day count as weeks+days, e.g. 10 -> "1w 3d".
func FormatCalendarDays(days int) string {
	return FormatPaceDuration(pacing.CalendarDaysToPaceDuration(days))
}

// TermBadge returns a purple-styled term label.
func TermBadge(term string) string {
	if term == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(term)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// WorkingDays pluralizes a working-day count.
func WorkingDays(n int) string {
	if n == 1 {
		return "1 working day"
	}
	return fmt.Sprintf("%d working days", n)
}
