package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPaceRepo(t *testing.T) (context.Context, *SQLiteCourseRepo, *SQLitePaceRepo, *domain.Course) {
	t.Helper()
	database := testutil.NewTestDB(t)
	courses := NewSQLiteCourseRepo(database)
	paces := NewSQLitePaceRepo(database)
	ctx := context.Background()

	course := testutil.NewTestCourse("History")
	require.NoError(t, courses.Create(ctx, course))
	return ctx, courses, paces, course
}

func TestPaceRepo_RoundTripsModuleTree(t *testing.T) {
	ctx, _, paces, course := setupPaceRepo(t)

	pace := testutil.NewTestPace(course.ID,
		testutil.WithExcludeWeekends(),
		testutil.WithSkipDays("friday"),
		testutil.WithCalendarDays(14),
	)
	pace.Modules = []*domain.PaceModule{
		testutil.NewTestModule(pace.ID, "Week 1", 0, 1, 2),
		testutil.NewTestModule(pace.ID, "Week 2", 1, 3),
	}
	require.NoError(t, paces.Create(ctx, pace))

	got, err := paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.Equal(t, pace.CourseID, got.CourseID)
	assert.True(t, got.ExcludeWeekends)
	assert.Equal(t, []string{"friday"}, got.SelectedDaysToSkip)
	assert.Equal(t, 14, got.TimeToCompleteCalendarDays)
	assert.Equal(t, domain.PaceUnpublished, got.WorkflowState)

	require.Len(t, got.Modules, 2)
	assert.Equal(t, "Week 1", got.Modules[0].Name)
	require.Len(t, got.Modules[0].Items, 2)
	assert.Equal(t, 1, got.Modules[0].Items[0].Duration)
	assert.Equal(t, 2, got.Modules[0].Items[1].Duration)
	require.Len(t, got.Modules[1].Items, 1)
	assert.Equal(t, 3, got.Modules[1].Items[0].Duration)
}

func TestPaceRepo_EmptySkipDaysRoundTripsAsNil(t *testing.T) {
	ctx, _, paces, course := setupPaceRepo(t)

	pace := testutil.NewTestPace(course.ID)
	require.NoError(t, paces.Create(ctx, pace))

	got, err := paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SelectedDaysToSkip)
}

func TestPaceRepo_GetByCourse_ReturnsNewestPace(t *testing.T) {
	ctx, _, paces, course := setupPaceRepo(t)

	older := testutil.NewTestPace(course.ID)
	older.CreatedAt = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	older.UpdatedAt = older.CreatedAt
	newer := testutil.NewTestPace(course.ID)
	newer.CreatedAt = time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	newer.UpdatedAt = newer.CreatedAt
	require.NoError(t, paces.Create(ctx, older))
	require.NoError(t, paces.Create(ctx, newer))

	got, err := paces.GetByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
}

func TestPaceRepo_Update(t *testing.T) {
	ctx, _, paces, course := setupPaceRepo(t)

	pace := testutil.NewTestPace(course.ID)
	require.NoError(t, paces.Create(ctx, pace))

	pace.TimeToCompleteCalendarDays = 60
	pace.ExcludeWeekends = true
	pace.WorkflowState = domain.PaceActive
	require.NoError(t, paces.Update(ctx, pace))

	got, err := paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.TimeToCompleteCalendarDays)
	assert.True(t, got.ExcludeWeekends)
	assert.Equal(t, domain.PaceActive, got.WorkflowState)
}

func TestPaceRepo_UpdateItemDuration(t *testing.T) {
	ctx, _, paces, course := setupPaceRepo(t)

	pace := testutil.NewTestPace(course.ID)
	pace.Modules = []*domain.PaceModule{testutil.NewTestModule(pace.ID, "Week 1", 0, 2)}
	require.NoError(t, paces.Create(ctx, pace))

	itemID := pace.Modules[0].Items[0].ID
	require.NoError(t, paces.UpdateItemDuration(ctx, itemID, 5))

	got, err := paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Modules[0].Items[0].Duration)
}

func TestPaceRepo_UpdateItemDuration_UnknownItem(t *testing.T) {
	ctx, _, paces, _ := setupPaceRepo(t)
	err := paces.UpdateItemDuration(ctx, "missing", 5)
	assert.ErrorContains(t, err, "pace item not found")
}

func TestPaceRepo_Delete_RemovesTree(t *testing.T) {
	ctx, _, paces, course := setupPaceRepo(t)

	pace := testutil.NewTestPace(course.ID)
	pace.Modules = []*domain.PaceModule{testutil.NewTestModule(pace.ID, "Week 1", 0, 1)}
	require.NoError(t, paces.Create(ctx, pace))
	require.NoError(t, paces.Delete(ctx, pace.ID))

	_, err := paces.GetByID(ctx, pace.ID)
	assert.ErrorContains(t, err, "pace not found")
}
