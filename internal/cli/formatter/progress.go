package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBudgetBar renders the budget consumption of a pace as a bar like
// [████░░░░] 7/30d. The bar turns yellow above 80% and red when the
// projection exceeds the budget.
func RenderBudgetBar(usedDays, budgetDays, width int) string {
	if width < 2 {
		width = 2
	}
	if budgetDays <= 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, width)) + Dim(" no budget set")
	}

	frac := float64(usedDays) / float64(budgetDays)
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if frac > 1 {
		style = StyleRed
	} else if frac > 0.8 {
		style = StyleYellow
	}

	return style.Render(bar) + " " + StyleFg.Render(fmt.Sprintf("%d/%dd", usedDays, budgetDays))
}
