package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

func newTaskFixture(t *testing.T) (TaskService, *fakeTaskRepo, *fakeActivityRepo) {
	t.Helper()
	repo := newFakeTaskRepo()
	activityRepo := &fakeActivityRepo{}
	return NewTaskService(repo, NewActivityService(activityRepo)), repo, activityRepo
}

func seedTask(t *testing.T, svc TaskService, task models.Task) *models.Task {
	t.Helper()
	created, err := svc.Create(context.Background(), 1, &task)
	require.NoError(t, err)
	return created
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires an actor", func(t *testing.T) {
		svc, _, _ := newTaskFixture(t)
		_, err := svc.Create(ctx, 0, &models.Task{Title: "x"})
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("requires a title", func(t *testing.T) {
		svc, _, _ := newTaskFixture(t)
		_, err := svc.Create(ctx, 1, &models.Task{})
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("defaults status and priority", func(t *testing.T) {
		svc, _, _ := newTaskFixture(t)
		created := seedTask(t, svc, models.Task{Title: "write report"})
		assert.Equal(t, models.StatusTodo, created.Status)
		assert.Equal(t, models.PriorityMedium, created.Priority)
		assert.Equal(t, int64(1), created.CreatedBy)
	})

	t.Run("rejects unknown status including done", func(t *testing.T) {
		svc, _, _ := newTaskFixture(t)
		_, err := svc.Create(ctx, 1, &models.Task{Title: "x", Status: "done"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("records a creation activity attributed to the actor", func(t *testing.T) {
		svc, _, activityRepo := newTaskFixture(t)
		created := seedTask(t, svc, models.Task{Title: "write report"})

		entries := activityRepo.byType(models.ActivityCreation)
		require.Len(t, entries, 1)
		assert.Equal(t, created.ID, entries[0].TaskID)
		assert.Equal(t, int64(1), entries[0].CreatedBy)
		assert.Equal(t, `Task "write report" created`, entries[0].Message)
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("invalid status is rejected before any read", func(t *testing.T) {
		svc, repo, _ := newTaskFixture(t)
		bad := models.TaskStatus("done")
		_, err := svc.Update(ctx, 1, 99, models.TaskUpdate{Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Zero(t, repo.findCalls, "validation must not touch the repository")
	})

	t.Run("missing task", func(t *testing.T) {
		svc, _, _ := newTaskFixture(t)
		title := "x"
		_, err := svc.Update(ctx, 1, 42, models.TaskUpdate{Title: &title})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("changing status, assignee and priority emits one activity each", func(t *testing.T) {
		svc, _, activityRepo := newTaskFixture(t)
		created := seedTask(t, svc, models.Task{Title: "triage bug"})

		status := models.StatusCompleted
		assignee := int64(7)
		priority := models.PriorityHigh
		updated, err := svc.Update(ctx, 1, created.ID, models.TaskUpdate{
			Status:     &status,
			AssignedTo: &assignee,
			Priority:   &priority,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, updated.Status)

		statusEntries := activityRepo.byType(models.ActivityStatusChange)
		require.Len(t, statusEntries, 1)
		assert.Equal(t, `Status changed from "todo" to "completed"`, statusEntries[0].Message)

		assignEntries := activityRepo.byType(models.ActivityAssignment)
		require.Len(t, assignEntries, 1)
		assert.Equal(t, "Assignee changed from unassigned to user 7", assignEntries[0].Message)

		prioEntries := activityRepo.byType(models.ActivityPriorityChange)
		require.Len(t, prioEntries, 1)
		assert.Equal(t, `Priority changed from "medium" to "high"`, prioEntries[0].Message)
	})

	t.Run("unchanged audited fields emit nothing", func(t *testing.T) {
		svc, _, activityRepo := newTaskFixture(t)
		created := seedTask(t, svc, models.Task{Title: "triage bug"})

		desc := "longer description"
		_, err := svc.Update(ctx, 1, created.ID, models.TaskUpdate{Description: &desc})
		require.NoError(t, err)

		assert.Empty(t, activityRepo.byType(models.ActivityStatusChange))
		assert.Empty(t, activityRepo.byType(models.ActivityAssignment))
		assert.Empty(t, activityRepo.byType(models.ActivityPriorityChange))
	})

	t.Run("a failed activity write does not fail the update", func(t *testing.T) {
		svc, repo, activityRepo := newTaskFixture(t)
		created := seedTask(t, svc, models.Task{Title: "triage bug"})

		activityRepo.storeErr = assert.AnError
		status := models.StatusInProgress
		updated, err := svc.Update(ctx, 1, created.ID, models.TaskUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.StatusInProgress, updated.Status)

		stored, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInProgress, stored.Status)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTaskFixture(t)
	created := seedTask(t, svc, models.Task{Title: "temp"})

	require.NoError(t, svc.Delete(ctx, 1, created.ID))
	_, err := svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1, created.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0, created.ID), ErrAuthRequired)
}
