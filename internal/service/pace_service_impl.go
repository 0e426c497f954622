package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lenaweber/paceflow/internal/contract"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/pacing"
	"github.com/lenaweber/paceflow/internal/repository"
)

type paceService struct {
	paces     repository.PaceRepo
	blackouts repository.BlackoutRepo
}

func NewPaceService(paces repository.PaceRepo, blackouts repository.BlackoutRepo) PaceService {
	return &paceService{paces: paces, blackouts: blackouts}
}

func (s *paceService) Create(ctx context.Context, p *domain.CoursePace) error {
	if p.TimeToCompleteCalendarDays < 0 {
		return fmt.Errorf("calendar-day budget must not be negative")
	}
	for _, day := range p.SelectedDaysToSkip {
		if !domain.ValidWeekdayName(day) {
			return fmt.Errorf("unknown weekday %q in skip list", day)
		}
	}

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.WorkflowState == "" {
		p.WorkflowState = domain.PaceUnpublished
	}
	for _, m := range p.Modules {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		m.PaceID = p.ID
		for _, item := range m.Items {
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			item.ModuleID = m.ID
			item.CreatedAt = now
			item.UpdatedAt = now
		}
	}
	return s.paces.Create(ctx, p)
}

func (s *paceService) GetByID(ctx context.Context, id string) (*domain.CoursePace, error) {
	return s.paces.GetByID(ctx, id)
}

func (s *paceService) GetByCourse(ctx context.Context, courseID string) (*domain.CoursePace, error) {
	return s.paces.GetByCourse(ctx, courseID)
}

func (s *paceService) SetBudget(ctx context.Context, paceID string, calendarDays int) error {
	if calendarDays < 0 {
		return fmt.Errorf("calendar-day budget must not be negative")
	}
	p, err := s.paces.GetByID(ctx, paceID)
	if err != nil {
		return err
	}
	p.TimeToCompleteCalendarDays = calendarDays
	p.UpdatedAt = time.Now().UTC()
	return s.paces.Update(ctx, p)
}

func (s *paceService) SetItemDuration(ctx context.Context, paceID, itemID string, duration int) error {
	if duration < 0 {
		return fmt.Errorf("item duration must not be negative")
	}
	p, err := s.paces.GetByID(ctx, paceID)
	if err != nil {
		return err
	}
	for _, item := range p.Items() {
		if item.ID == itemID {
			return s.paces.UpdateItemDuration(ctx, itemID, duration)
		}
	}
	return fmt.Errorf("pace item %s does not belong to pace %s", itemID, paceID)
}

// ApplyWeighting replaces item durations by category weight and persists the
// result, returning the reloaded pace.
func (s *paceService) ApplyWeighting(ctx context.Context, paceID string, weighting pacing.ItemWeighting) (*domain.CoursePace, error) {
	p, err := s.paces.GetByID(ctx, paceID)
	if err != nil {
		return nil, err
	}

	weighted := pacing.WeightItemDurations(p.Items(), weighting)
	for _, item := range weighted {
		if err := s.paces.UpdateItemDuration(ctx, item.ID, item.Duration); err != nil {
			return nil, err
		}
	}
	return s.paces.GetByID(ctx, paceID)
}

func (s *paceService) Project(ctx context.Context, paceID string) (*contract.PaceProjection, error) {
	p, err := s.paces.GetByID(ctx, paceID)
	if err != nil {
		return nil, err
	}
	blackouts, err := s.blackouts.ListByCourse(ctx, p.CourseID)
	if err != nil {
		return nil, err
	}

	items := p.Items()
	dueDates := pacing.GetDueDates(items, p.ExcludeWeekends, p.SelectedDaysToSkip, blackouts, p.StartDate)

	proj := &contract.PaceProjection{
		PaceID:     p.ID,
		CourseID:   p.CourseID,
		StartDate:  p.StartDate.Format(contract.DateLayout),
		BudgetDays: p.TimeToCompleteCalendarDays,
	}

	for _, m := range p.Modules {
		for _, item := range m.Items {
			proj.Items = append(proj.Items, contract.ItemDueDate{
				ItemID:     item.ID,
				ModuleName: m.Name,
				Title:      item.Title,
				ItemType:   string(item.ModuleItemType),
				Duration:   item.Duration,
				DueDate:    dueDates[item.ID].Format(contract.DateLayout),
			})
		}
	}

	if end, ok := pacing.ProjectedEndDate(p, items, blackouts); ok {
		span := pacing.InclusiveDaySpan(p.StartDate, end)
		d := pacing.CalendarDaysToPaceDuration(span)
		proj.ProjectedEndDate = end.Format(contract.DateLayout)
		proj.CalendarDaysUsed = span
		proj.Weeks = d.Weeks
		proj.Days = d.Days
	}
	proj.WithinBudget = pacing.IsTimeToCompleteValid(p, items, blackouts)
	return proj, nil
}

func (s *paceService) Validate(ctx context.Context, paceID string) (*contract.ValidationResult, error) {
	proj, err := s.Project(ctx, paceID)
	if err != nil {
		return nil, err
	}
	res := &contract.ValidationResult{
		Valid:            proj.WithinBudget,
		CalendarDaysUsed: proj.CalendarDaysUsed,
		BudgetDays:       proj.BudgetDays,
	}
	if !res.Valid {
		res.OverBy = proj.CalendarDaysUsed - proj.BudgetDays
	}
	return res, nil
}

// DistributeBudget spreads the pace's calendar-day budget evenly across its
// items: every item gets the base working-day duration, and the first
// Remainder items in sequence get one extra day.
func (s *paceService) DistributeBudget(ctx context.Context, paceID string) (*contract.DistributeResult, error) {
	p, err := s.paces.GetByID(ctx, paceID)
	if err != nil {
		return nil, err
	}
	blackouts, err := s.blackouts.ListByCourse(ctx, p.CourseID)
	if err != nil {
		return nil, err
	}

	items := p.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("pace has no items to distribute the budget over")
	}

	split := pacing.ItemDurationsFromTimeToComplete(p, blackouts, p.TimeToCompleteCalendarDays, len(items))
	for i, item := range items {
		duration := split.Duration
		if i < split.Remainder {
			duration++
		}
		if err := s.paces.UpdateItemDuration(ctx, item.ID, duration); err != nil {
			return nil, err
		}
	}

	return &contract.DistributeResult{
		Duration:     split.Duration,
		Remainder:    split.Remainder,
		ItemsUpdated: len(items),
	}, nil
}

func (s *paceService) Publish(ctx context.Context, paceID string) error {
	p, err := s.paces.GetByID(ctx, paceID)
	if err != nil {
		return err
	}
	blackouts, err := s.blackouts.ListByCourse(ctx, p.CourseID)
	if err != nil {
		return err
	}
	if !pacing.IsTimeToCompleteValid(p, p.Items(), blackouts) {
		return fmt.Errorf("pace exceeds its %d-day budget; adjust durations or the budget before publishing", p.TimeToCompleteCalendarDays)
	}
	p.WorkflowState = domain.PaceActive
	p.UpdatedAt = time.Now().UTC()
	return s.paces.Update(ctx, p)
}
