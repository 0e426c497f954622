package service

import (
	"context"
	"testing"

	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/pacing"
	"github.com/lenaweber/paceflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaceService_Create_AssignsIDsAndWiresTree(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course := testutil.NewTestCourse("Wiring")
	require.NoError(t, e.Courses.Create(ctx, course))

	pace := &domain.CoursePace{
		CourseID:                   course.ID,
		StartDate:                  day(2021, 9, 1),
		TimeToCompleteCalendarDays: 14,
		Modules: []*domain.PaceModule{
			{Name: "Week 1", Items: []*domain.PaceItem{
				{Title: "Reading", ModuleItemType: domain.ItemPage, Duration: 1},
			}},
		},
	}
	require.NoError(t, e.Paces.Create(ctx, pace))

	got, err := e.Paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.PaceUnpublished, got.WorkflowState)
	require.Len(t, got.Modules, 1)
	require.Len(t, got.Modules[0].Items, 1)
	assert.Equal(t, got.Modules[0].ID, got.Modules[0].Items[0].ModuleID)
}

func TestPaceService_Create_RejectsBadInputs(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course := testutil.NewTestCourse("Guarded")
	require.NoError(t, e.Courses.Create(ctx, course))

	bad := testutil.NewTestPace(course.ID, testutil.WithCalendarDays(-1))
	assert.ErrorContains(t, e.Paces.Create(ctx, bad), "must not be negative")

	bad = testutil.NewTestPace(course.ID, testutil.WithSkipDays("caturday"))
	assert.ErrorContains(t, e.Paces.Create(ctx, bad), "unknown weekday")
}

func TestPaceService_Project_ReportsDueDatesAndBudget(t *testing.T) {
	e := newEnv(t)
	_, pace := seedPace(t, e, 2, 2, 2)

	proj, err := e.Paces.Project(context.Background(), pace.ID)
	require.NoError(t, err)

	assert.Equal(t, "2021-09-01", proj.StartDate)
	assert.Equal(t, "2021-09-07", proj.ProjectedEndDate)
	assert.Equal(t, 7, proj.CalendarDaysUsed)
	assert.Equal(t, 30, proj.BudgetDays)
	assert.True(t, proj.WithinBudget)
	assert.Equal(t, 1, proj.Weeks)
	assert.Equal(t, 0, proj.Days)

	require.Len(t, proj.Items, 3)
	assert.Equal(t, "2021-09-03", proj.Items[0].DueDate)
	assert.Equal(t, "2021-09-05", proj.Items[1].DueDate)
	assert.Equal(t, "2021-09-07", proj.Items[2].DueDate)
	assert.Equal(t, "Week 1", proj.Items[0].ModuleName)
}

func TestPaceService_Project_RespectsBlackouts(t *testing.T) {
	e := newEnv(t)
	course, pace := seedPace(t, e, 2, 2, 2)
	ctx := context.Background()

	require.NoError(t, e.Blackouts.Add(ctx, testutil.NewTestBlackout(
		course.ID, "Orientation", day(2021, 9, 2), day(2021, 9, 3))))

	proj, err := e.Paces.Project(ctx, pace.ID)
	require.NoError(t, err)
	assert.Equal(t, "2021-09-09", proj.ProjectedEndDate)
}

func TestPaceService_Validate_OverBudget(t *testing.T) {
	e := newEnv(t)
	_, pace := seedPace(t, e, 2, 2, 2)
	ctx := context.Background()

	require.NoError(t, e.Paces.SetBudget(ctx, pace.ID, 4))

	res, err := e.Paces.Validate(ctx, pace.ID)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 7, res.CalendarDaysUsed)
	assert.Equal(t, 4, res.BudgetDays)
	assert.Equal(t, 3, res.OverBy)
}

func TestPaceService_SetItemDuration(t *testing.T) {
	e := newEnv(t)
	_, pace := seedPace(t, e, 2)
	ctx := context.Background()

	itemID := pace.Modules[0].Items[0].ID
	require.NoError(t, e.Paces.SetItemDuration(ctx, pace.ID, itemID, 9))

	got, err := e.Paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Modules[0].Items[0].Duration)
}

func TestPaceService_SetItemDuration_ForeignItemRejected(t *testing.T) {
	e := newEnv(t)
	_, paceA := seedPace(t, e, 2)
	_, paceB := seedPace(t, e, 2)
	ctx := context.Background()

	foreign := paceB.Modules[0].Items[0].ID
	err := e.Paces.SetItemDuration(ctx, paceA.ID, foreign, 5)
	assert.ErrorContains(t, err, "does not belong to pace")
}

func TestPaceService_ApplyWeighting_PersistsWeights(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	course := testutil.NewTestCourse("Weighted")
	require.NoError(t, e.Courses.Create(ctx, course))

	pace := testutil.NewTestPace(course.ID)
	m := testutil.NewTestModule(pace.ID, "Week 1", 0)
	m.Items = []*domain.PaceItem{
		testutil.NewTestItem(m.ID, "Essay", 0, 7),
		testutil.NewTestItem(m.ID, "Notes", 1, 6),
	}
	m.Items[1].ModuleItemType = domain.ItemPage
	pace.Modules = []*domain.PaceModule{m}
	require.NoError(t, e.Paces.Create(ctx, pace))

	two := 2
	got, err := e.Paces.ApplyWeighting(ctx, pace.ID, pacing.ItemWeighting{Assignment: &two})
	require.NoError(t, err)

	items := got.Items()
	assert.Equal(t, 2, items[0].Duration, "assignment takes the weight")
	assert.Equal(t, 6, items[1].Duration, "unweighted page keeps its duration")
}

func TestPaceService_DistributeBudget(t *testing.T) {
	e := newEnv(t)
	_, pace := seedPace(t, e, 0, 0, 0)
	ctx := context.Background()

	require.NoError(t, e.Paces.SetBudget(ctx, pace.ID, 10))

	res, err := e.Paces.DistributeBudget(ctx, pace.ID)
	require.NoError(t, err)
	// 8 eligible days inside the window across 3 items.
	assert.Equal(t, 2, res.Duration)
	assert.Equal(t, 2, res.Remainder)
	assert.Equal(t, 3, res.ItemsUpdated)

	got, err := e.Paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	durations := []int{}
	for _, item := range got.Items() {
		durations = append(durations, item.Duration)
	}
	assert.Equal(t, []int{3, 3, 2}, durations, "first remainder items take the extra day")
}

func TestPaceService_DistributeBudget_NoItems(t *testing.T) {
	e := newEnv(t)
	_, pace := seedPace(t, e)

	_, err := e.Paces.DistributeBudget(context.Background(), pace.ID)
	assert.ErrorContains(t, err, "no items")
}

func TestPaceService_Publish(t *testing.T) {
	e := newEnv(t)
	_, pace := seedPace(t, e, 2, 2, 2)
	ctx := context.Background()

	require.NoError(t, e.Paces.Publish(ctx, pace.ID))

	got, err := e.Paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaceActive, got.WorkflowState)
}

func TestPaceService_Publish_RejectsOverBudgetPace(t *testing.T) {
	e := newEnv(t)
	_, pace := seedPace(t, e, 2, 2, 2)
	ctx := context.Background()

	require.NoError(t, e.Paces.SetBudget(ctx, pace.ID, 4))
	err := e.Paces.Publish(ctx, pace.ID)
	assert.ErrorContains(t, err, "exceeds its 4-day budget")

	got, err := e.Paces.GetByID(ctx, pace.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaceUnpublished, got.WorkflowState)
}
