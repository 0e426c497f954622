package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lenaweber/paceflow/internal/domain"
)

// ImportedCourse bundles the domain objects produced from one import file.
type ImportedCourse struct {
	Course    *domain.Course
	Pace      *domain.CoursePace
	Blackouts []*domain.BlackoutDate
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema) (*ImportedCourse, error) {
	now := time.Now().UTC()

	startDate, err := time.Parse("2006-01-02", schema.Pace.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing pace start_date: %w", err)
	}

	course := &domain.Course{
		ID:        uuid.New().String(),
		Code:      strings.ToUpper(schema.Course.Code),
		Name:      schema.Course.Name,
		Term:      schema.Course.Term,
		Status:    domain.CourseActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	defaultDuration := 0
	defaultType := string(domain.ItemOther)
	if schema.Defaults != nil {
		defaultDuration = domain.IntFromPtrWithDefault(0, schema.Defaults.ItemDuration)
		defaultType = domain.CoalesceStr(schema.Defaults.ItemType, defaultType)
	}

	pace := &domain.CoursePace{
		ID:                         uuid.New().String(),
		CourseID:                   course.ID,
		StartDate:                  startDate,
		TimeToCompleteCalendarDays: schema.Pace.CalendarDays,
		ExcludeWeekends:            domain.BoolFromPtrWithDefault(false, schema.Pace.ExcludeWeekends),
		SelectedDaysToSkip:         schema.Pace.SelectedDaysToSkip,
		WorkflowState:              domain.PaceUnpublished,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}

	for mi, m := range schema.Modules {
		module := &domain.PaceModule{
			ID:       uuid.New().String(),
			PaceID:   pace.ID,
			Name:     m.Name,
			Position: mi,
		}
		for ii, item := range m.Items {
			module.Items = append(module.Items, &domain.PaceItem{
				ID:             uuid.New().String(),
				ModuleID:       module.ID,
				Title:          item.Title,
				ModuleItemType: domain.ModuleItemType(domain.CoalesceStr(item.Type, defaultType)),
				Duration:       domain.IntFromPtrWithDefault(defaultDuration, item.Duration),
				Position:       ii,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		}
		pace.Modules = append(pace.Modules, module)
	}

	blackouts := make([]*domain.BlackoutDate, 0, len(schema.BlackoutDates))
	for _, b := range schema.BlackoutDates {
		start, err := time.Parse("2006-01-02", b.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing blackout start_date: %w", err)
		}
		end, err := time.Parse("2006-01-02", b.EndDate)
		if err != nil {
			return nil, fmt.Errorf("parsing blackout end_date: %w", err)
		}
		blackouts = append(blackouts, &domain.BlackoutDate{
			ID:         uuid.New().String(),
			CourseID:   course.ID,
			EventTitle: b.EventTitle,
			StartDate:  start,
			EndDate:    end,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	return &ImportedCourse{Course: course, Pace: pace, Blackouts: blackouts}, nil
}
