package formatter

import (
	"fmt"

	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/pacing"
)

// FormatBlackoutTable renders blackout intervals as a table.
func FormatBlackoutTable(blackouts []domain.BlackoutDate) string {
	headers := []string{"ID", "EVENT", "FROM", "TO", "LENGTH"}
	rows := make([][]string, 0, len(blackouts))

	for _, b := range blackouts {
		span := pacing.InclusiveDaySpan(b.StartDate, b.EndDate)
		rows = append(rows, []string{
			TruncID(b.ID),
			Bold(b.EventTitle),
			b.StartDate.Format("2006-01-02"),
			b.EndDate.Format("2006-01-02"),
			Dim(fmt.Sprintf("%dd", span)),
		})
	}
	return RenderTable(headers, rows)
}
