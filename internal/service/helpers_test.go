package service

import (
	"context"
	"testing"
	"time"

	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/repository"
	"github.com/lenaweber/paceflow/internal/testutil"
	"github.com/stretchr/testify/require"
)

// env bundles the wired services and repos for a test against an in-memory DB.
type env struct {
	Courses   CourseService
	Paces     PaceService
	Blackouts BlackoutService
	Import    ImportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	paceRepo := repository.NewSQLitePaceRepo(database)
	blackoutRepo := repository.NewSQLiteBlackoutRepo(database)

	return &env{
		Courses:   NewCourseService(courseRepo),
		Paces:     NewPaceService(paceRepo, blackoutRepo),
		Blackouts: NewBlackoutService(blackoutRepo),
		Import:    NewImportService(testutil.NewTestUoW(database)),
	}
}

// seedPace creates a course with a pace of one module whose items carry the
// given durations, starting Wed 2021-09-01 with a 30-day budget.
func seedPace(t *testing.T, e *env, durations ...int) (*domain.Course, *domain.CoursePace) {
	t.Helper()
	ctx := context.Background()

	course := testutil.NewTestCourse("Seeded Course")
	require.NoError(t, e.Courses.Create(ctx, course))

	pace := testutil.NewTestPace(course.ID)
	pace.Modules = []*domain.PaceModule{testutil.NewTestModule(pace.ID, "Week 1", 0, durations...)}
	require.NoError(t, e.Paces.Create(ctx, pace))

	loaded, err := e.Paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	return course, loaded
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
