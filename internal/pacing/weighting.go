package pacing

import "github.com/lenaweber/paceflow/internal/domain"

// ItemWeighting maps item categories to replacement durations. A nil field
// means no weight is defined for that category.
type ItemWeighting struct {
	Assignment *int
	Discussion *int
	Quiz       *int
	Page       *int
}

// WeightItemDurations returns a copy of items with each duration replaced by
// the weight defined for its category. Items whose category has no weight,
// and items of unknown categories, keep their original duration. Inputs are
// never mutated.
func WeightItemDurations(items []*domain.PaceItem, weighting ItemWeighting) []*domain.PaceItem {
	out := make([]*domain.PaceItem, len(items))
	for i, item := range items {
		copied := *item
		if w := weighting.forType(item.ModuleItemType); w != nil {
			copied.Duration = *w
		}
		out[i] = &copied
	}
	return out
}

func (w ItemWeighting) forType(t domain.ModuleItemType) *int {
	switch t {
	case domain.ItemAssignment:
		return w.Assignment
	case domain.ItemDiscussion:
		return w.Discussion
	case domain.ItemQuiz:
		return w.Quiz
	case domain.ItemPage:
		return w.Page
	default:
		return nil
	}
}
