package repository

import (
	"context"
	"testing"

	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	course := testutil.NewTestCourse("Intro Biology", testutil.WithCode("BIO101"))
	require.NoError(t, repo.Create(ctx, course))

	got, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, got.ID)
	assert.Equal(t, "BIO101", got.Code)
	assert.Equal(t, "Intro Biology", got.Name)
	assert.Equal(t, domain.CourseActive, got.Status)
	assert.Nil(t, got.ArchivedAt)
}

func TestCourseRepo_GetByCode_CaseInsensitive(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	course := testutil.NewTestCourse("Chemistry", testutil.WithCode("CHEM200"))
	require.NoError(t, repo.Create(ctx, course))

	got, err := repo.GetByCode(ctx, "chem200")
	require.NoError(t, err)
	assert.Equal(t, course.ID, got.ID)
}

func TestCourseRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorContains(t, err, "course not found")
}

func TestCourseRepo_List_ExcludesArchivedByDefault(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	active := testutil.NewTestCourse("Active Course")
	archived := testutil.NewTestCourse("Old Course")
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, archived))
	require.NoError(t, repo.Archive(ctx, archived.ID))

	visible, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCourseRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRepo(database)
	ctx := context.Background()

	course := testutil.NewTestCourse("Physics")
	require.NoError(t, repo.Create(ctx, course))

	course.Name = "Physics I"
	course.Term = "Spring 2023"
	require.NoError(t, repo.Update(ctx, course))

	got, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics I", got.Name)
	assert.Equal(t, "Spring 2023", got.Term)
}

func TestCourseRepo_Delete_CascadesToPacesAndBlackouts(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	courses := NewSQLiteCourseRepo(database)
	paces := NewSQLitePaceRepo(database)
	blackouts := NewSQLiteBlackoutRepo(database)

	course := testutil.NewTestCourse("Doomed")
	require.NoError(t, courses.Create(ctx, course))

	pace := testutil.NewTestPace(course.ID)
	pace.Modules = []*domain.PaceModule{testutil.NewTestModule(pace.ID, "Week 1", 0, 1, 2)}
	require.NoError(t, paces.Create(ctx, pace))
	require.NoError(t, blackouts.Create(ctx, testutil.NewTestBlackout(course.ID, "Break", pace.StartDate, pace.StartDate)))

	require.NoError(t, courses.Delete(ctx, course.ID))

	_, err := paces.GetByCourse(ctx, course.ID)
	assert.ErrorContains(t, err, "pace not found")

	remaining, err := blackouts.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	var itemCount int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM pace_items`).Scan(&itemCount))
	assert.Zero(t, itemCount, "cascade must remove pace items")
}
