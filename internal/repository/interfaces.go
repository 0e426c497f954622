package repository

import (
	"context"

	"github.com/lenaweber/paceflow/internal/db"
	"github.com/lenaweber/paceflow/internal/domain"
)

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// PaceRepo persists paces together with their module/item tree. Get and
// GetByCourse return the pace fully loaded, modules and items sorted by
// position.
type PaceRepo interface {
	Create(ctx context.Context, p *domain.CoursePace) error
	GetByID(ctx context.Context, id string) (*domain.CoursePace, error)
	GetByCourse(ctx context.Context, courseID string) (*domain.CoursePace, error)
	Update(ctx context.Context, p *domain.CoursePace) error
	UpdateItemDuration(ctx context.Context, itemID string, duration int) error
	Delete(ctx context.Context, id string) error
}

type BlackoutRepo interface {
	Create(ctx context.Context, b *domain.BlackoutDate) error
	ListByCourse(ctx context.Context, courseID string) ([]domain.BlackoutDate, error)
	Delete(ctx context.Context, id string) error
}

// TxRepos builds tx-scoped repositories from a DBTX so the import service
// can compose multi-entity writes inside one transaction.
type TxRepos struct {
	Courses   CourseRepo
	Paces     PaceRepo
	Blackouts BlackoutRepo
}

// NewTxRepos creates repositories bound to the given DBTX.
func NewTxRepos(tx db.DBTX) TxRepos {
	return TxRepos{
		Courses:   &SQLiteCourseRepo{db: tx},
		Paces:     &SQLitePaceRepo{db: tx},
		Blackouts: &SQLiteBlackoutRepo{db: tx},
	}
}
