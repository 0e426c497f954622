package service

import (
	"context"

	"github.com/lenaweber/paceflow/internal/contract"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/importer"
	"github.com/lenaweber/paceflow/internal/pacing"
)

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type PaceService interface {
	Create(ctx context.Context, p *domain.CoursePace) error
	GetByID(ctx context.Context, id string) (*domain.CoursePace, error)
	GetByCourse(ctx context.Context, courseID string) (*domain.CoursePace, error)
	SetBudget(ctx context.Context, paceID string, calendarDays int) error
	SetItemDuration(ctx context.Context, paceID, itemID string, duration int) error
	ApplyWeighting(ctx context.Context, paceID string, weighting pacing.ItemWeighting) (*domain.CoursePace, error)
	Project(ctx context.Context, paceID string) (*contract.PaceProjection, error)
	Validate(ctx context.Context, paceID string) (*contract.ValidationResult, error)
	DistributeBudget(ctx context.Context, paceID string) (*contract.DistributeResult, error)
	Publish(ctx context.Context, paceID string) error
}

type BlackoutService interface {
	Add(ctx context.Context, b *domain.BlackoutDate) error
	ListByCourse(ctx context.Context, courseID string) ([]domain.BlackoutDate, error)
	Remove(ctx context.Context, id string) error
}

// ImportResult holds the outcome of a course import.
type ImportResult struct {
	Course        *domain.Course
	Pace          *domain.CoursePace
	ModuleCount   int
	ItemCount     int
	BlackoutCount int
}

type ImportService interface {
	ImportCourse(ctx context.Context, filePath string) (*ImportResult, error)
	ImportCourseFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
