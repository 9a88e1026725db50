package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lastminute/internal/model"
	"lastminute/internal/planner"
	"lastminute/internal/repository"
)

func newTestTaskService(t *testing.T) (*TaskService, *model.User) {
	t.Helper()
	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	user := &model.User{Name: "Test Student", Email: t.Name() + "@example.com", PasswordHash: "x", Role: model.RoleStudent}
	require.NoError(t, userRepo.Create(context.Background(), user))
	require.NoError(t, categoryRepo.Create(context.Background(), &model.Category{UserID: user.ID, Name: "Study"}))

	return NewTaskService(taskRepo, categoryRepo), user
}

func validInput() TaskInput {
	return TaskInput{
		Title:      "Revise unit 3",
		Category:   "Study",
		Priority:   "high",
		DueDate:    "2025-06-10",
		Recurrence: "daily",
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc, user := newTestTaskService(t)
	ctx := context.Background()

	t.Run("valid task is stored", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, user, validInput())
		require.NoError(t, err)
		assert.NotZero(t, task.ID)
		assert.Equal(t, "daily", task.Recurrence)
	})

	t.Run("recurrence defaults to none", func(t *testing.T) {
		input := validInput()
		input.Recurrence = ""
		task, err := svc.CreateTask(ctx, user, input)
		require.NoError(t, err)
		assert.Equal(t, "none", task.Recurrence)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		input := validInput()
		input.Category = "Nonexistent"
		_, err := svc.CreateTask(ctx, user, input)
		assert.ErrorContains(t, err, "unknown category")
	})

	t.Run("malformed due date is rejected", func(t *testing.T) {
		input := validInput()
		input.DueDate = "10/06/2025"
		_, err := svc.CreateTask(ctx, user, input)
		assert.Error(t, err)
	})

	t.Run("bad recurrence enum is rejected", func(t *testing.T) {
		input := validInput()
		input.Recurrence = "fortnightly"
		_, err := svc.CreateTask(ctx, user, input)
		assert.Error(t, err)
	})
}

func TestToggleCompletion(t *testing.T) {
	svc, user := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user, validInput())
	require.NoError(t, err)

	res, err := svc.ToggleCompletion(ctx, user, task.ID, "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, "marked", res.Action)
	assert.Contains(t, res.Task.CompletedDates, "2025-06-09")

	// Toggling the same date again restores the original state.
	res, err = svc.ToggleCompletion(ctx, user, task.ID, "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, "unmarked", res.Action)
	assert.NotContains(t, res.Task.CompletedDates, "2025-06-09")
}

func TestToggleCompletionRejectsNonOccurrenceDates(t *testing.T) {
	svc, user := newTestTaskService(t)
	ctx := context.Background()

	input := validInput()
	input.Recurrence = "weekly"
	task, err := svc.CreateTask(ctx, user, input)
	require.NoError(t, err)

	// A day after the anchor is never an occurrence.
	_, err = svc.ToggleCompletion(ctx, user, task.ID, "2025-06-11")
	assert.ErrorContains(t, err, "not an occurrence date")

	// Off-step for weekly recurrence.
	_, err = svc.ToggleCompletion(ctx, user, task.ID, "2025-06-04")
	assert.ErrorContains(t, err, "not an occurrence date")

	// One whole week back is fine.
	_, err = svc.ToggleCompletion(ctx, user, task.ID, "2025-06-03")
	assert.NoError(t, err)
}

func TestUpdateTaskPrunesStaleCompletedDates(t *testing.T) {
	svc, user := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, user, validInput())
	require.NoError(t, err)
	_, err = svc.ToggleCompletion(ctx, user, task.ID, "2025-06-04")
	require.NoError(t, err)
	_, err = svc.ToggleCompletion(ctx, user, task.ID, "2025-06-03")
	require.NoError(t, err)

	// Switching daily -> weekly keeps only dates whole weeks from the anchor.
	weekly := "weekly"
	updated, err := svc.UpdateTask(ctx, user, task.ID, TaskUpdate{Recurrence: &weekly})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-03"}, updated.CompletedDates)
}

func TestViewMaterializesAndFilters(t *testing.T) {
	svc, user := newTestTaskService(t)
	ctx := context.Background()

	weeklyInput := TaskInput{
		Title:      "Weekly quiz",
		Category:   "Study",
		Priority:   "medium",
		DueDate:    "2025-06-01",
		Recurrence: "weekly",
	}
	_, err := svc.CreateTask(ctx, user, weeklyInput)
	require.NoError(t, err)

	oneOff, err := svc.CreateTask(ctx, user, TaskInput{
		Title:      "Submit form",
		Category:   "Study",
		Priority:   "low",
		DueDate:    "2025-06-10",
		Recurrence: "none",
	})
	require.NoError(t, err)

	// The weekly anchor (2025-06-01) lies before the window start, so only
	// the one-off task appears.
	occs, err := svc.View(ctx, user, planner.ViewWeek, "2025-06-08", planner.Filter{}, planner.SortByDate)
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.Equal(t, oneOff.ID, occs[0].TaskID)
	assert.Equal(t, "2025-06-10", occs[0].Date)

	// Status filtering happens after materialization.
	occs, err = svc.View(ctx, user, planner.ViewWeek, "2025-06-08", planner.Filter{Status: planner.StatusCompleted}, planner.SortByDate)
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestCategoryDeleteRefusesWhenInUse(t *testing.T) {
	svc, user := newTestTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, user, validInput())
	require.NoError(t, err)

	catSvc := NewCategoryService(svc.categoryRepo, svc.taskRepo)
	cats, err := catSvc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, cats, 1)

	err = catSvc.Delete(ctx, user, cats[0].ID)
	assert.ErrorContains(t, err, "is used by")
}
