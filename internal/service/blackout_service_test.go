package service

import (
	"context"
	"testing"

	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackoutService_Add_Validates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course := testutil.NewTestCourse("Guard")
	require.NoError(t, e.Courses.Create(ctx, course))

	bad := &domain.BlackoutDate{
		CourseID:   course.ID,
		EventTitle: "Backwards",
		StartDate:  day(2022, 3, 10),
		EndDate:    day(2022, 3, 7),
	}
	assert.ErrorContains(t, e.Blackouts.Add(ctx, bad), "before start date")

	untitled := &domain.BlackoutDate{
		CourseID:  course.ID,
		StartDate: day(2022, 3, 7),
		EndDate:   day(2022, 3, 10),
	}
	assert.ErrorContains(t, e.Blackouts.Add(ctx, untitled), "title is required")
}

func TestBlackoutService_AddListRemove(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course := testutil.NewTestCourse("Calendar")
	require.NoError(t, e.Courses.Create(ctx, course))

	b := testutil.NewTestBlackout(course.ID, "Reading week", day(2022, 2, 21), day(2022, 2, 25))
	require.NoError(t, e.Blackouts.Add(ctx, b))
	assert.NotEmpty(t, b.ID)

	got, err := e.Blackouts.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Reading week", got[0].EventTitle)

	require.NoError(t, e.Blackouts.Remove(ctx, b.ID))
	got, err = e.Blackouts.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
