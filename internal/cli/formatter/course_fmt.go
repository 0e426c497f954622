package formatter

import (
	"strings"

	"github.com/lenaweber/paceflow/internal/domain"
)

// FormatCourseList renders a styled course list inside a bordered box.
func FormatCourseList(courses []*domain.Course) string {
	headers := []string{"CODE", "NAME", "TERM", "STATUS"}
	rows := make([][]string, 0, len(courses))

	for _, c := range courses {
		code := c.Code
		if strings.TrimSpace(code) == "" {
			code = TruncID(c.ID)
		}
		rows = append(rows, []string{
			code,
			Bold(c.Name),
			TermBadge(c.Term),
			CourseStatusPill(c.Status),
		})
	}

	return RenderBox("Courses", RenderTable(headers, rows))
}

// FormatCourseDetail renders a single course card with its blackout dates.
func FormatCourseDetail(c *domain.Course, blackouts []domain.BlackoutDate) string {
	var b strings.Builder
	b.WriteString(Header(c.Name) + "\n")
	b.WriteString(Dim("Code:   ") + StyleFg.Render(c.DisplayID()) + "\n")
	b.WriteString(Dim("Term:   ") + TermBadge(c.Term) + "\n")
	b.WriteString(Dim("Status: ") + CourseStatusPill(c.Status) + "\n")

	if len(blackouts) > 0 {
		b.WriteString("\n" + Header("Blackout dates") + "\n")
		b.WriteString(FormatBlackoutTable(blackouts))
	}
	return b.String()
}
