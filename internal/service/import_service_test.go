package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lenaweber/paceflow/internal/importer"
	"github.com/lenaweber/paceflow/internal/repository"
	"github.com/lenaweber/paceflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importFixture = `{
  "course": {"code": "BIO101", "name": "Intro Biology", "term": "Fall 2022"},
  "pace": {
    "start_date": "2022-09-01",
    "calendar_days": 30,
    "exclude_weekends": true,
    "selected_days_to_skip": ["friday"]
  },
  "defaults": {"item_duration": 2, "item_type": "assignment"},
  "modules": [
    {"ref": "m1", "name": "Week 1", "items": [
      {"ref": "i1", "title": "Cell structure reading", "type": "page", "duration": 1},
      {"ref": "i2", "title": "Lab report"}
    ]},
    {"ref": "m2", "name": "Week 2", "items": [
      {"ref": "i3", "title": "Quiz 1", "type": "quiz"}
    ]}
  ],
  "blackout_dates": [
    {"event_title": "Labor day", "start_date": "2022-09-05", "end_date": "2022-09-05"}
  ]
}`

func TestImportService_ImportCourse_FromFile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "course.json")
	require.NoError(t, os.WriteFile(path, []byte(importFixture), 0644))

	res, err := e.Import.ImportCourse(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "BIO101", res.Course.Code)
	assert.Equal(t, 2, res.ModuleCount)
	assert.Equal(t, 3, res.ItemCount)
	assert.Equal(t, 1, res.BlackoutCount)

	pace, err := e.Paces.GetByCourse(ctx, res.Course.ID)
	require.NoError(t, err)
	assert.True(t, pace.ExcludeWeekends)
	assert.Equal(t, []string{"friday"}, pace.SelectedDaysToSkip)

	items := pace.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0].Duration, "explicit duration wins")
	assert.Equal(t, 2, items[1].Duration, "default duration cascades")

	blackouts, err := e.Blackouts.ListByCourse(ctx, res.Course.ID)
	require.NoError(t, err)
	assert.Len(t, blackouts, 1)
}

func TestImportService_ImportCourse_MissingFile(t *testing.T) {
	e := newEnv(t)
	_, err := e.Import.ImportCourse(context.Background(), "/nonexistent/course.json")
	assert.Error(t, err)
}

func TestImportService_ValidationFailureListsAllErrors(t *testing.T) {
	e := newEnv(t)

	schema := &importer.ImportSchema{
		Course: importer.CourseImport{},
		Pace:   importer.PaceImport{StartDate: "bad-date"},
	}
	_, err := e.Import.ImportCourseFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.ErrorContains(t, err, "import validation failed")
	assert.ErrorContains(t, err, "course.code is required")
	assert.ErrorContains(t, err, "invalid date format")
}

func TestImportService_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	courses := NewCourseService(repository.NewSQLiteCourseRepo(database))
	failing := NewImportService(&testutil.FailingUoW{Inner: testutil.NewTestUoW(database)})
	ctx := context.Background()

	var schema importer.ImportSchema
	require.NoError(t, json.Unmarshal([]byte(importFixture), &schema))

	_, err := failing.ImportCourseFromSchema(ctx, &schema)
	require.ErrorContains(t, err, "injected failure")

	after, err := courses.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, after, "failed import must not leave rows behind")

	var itemCount int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM pace_items`).Scan(&itemCount))
	assert.Zero(t, itemCount)
}
