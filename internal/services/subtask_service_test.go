package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

func newSubtaskFixture(t *testing.T) (SubtaskService, *fakeTaskRepo) {
	t.Helper()
	taskRepo := newFakeTaskRepo()
	return NewSubtaskService(newFakeSubtaskRepo(), taskRepo), taskRepo
}

func TestSubtaskService_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("attaches to an existing task", func(t *testing.T) {
		svc, taskRepo := newSubtaskFixture(t)
		parent := &models.Task{Title: "parent", Status: models.StatusTodo, Priority: models.PriorityMedium, CreatedBy: 1}
		require.NoError(t, taskRepo.Store(ctx, parent))

		created, err := svc.Add(ctx, 1, &models.Subtask{TaskID: parent.ID, Title: "step one"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.IsComplete)

		list, err := svc.ListByTask(ctx, parent.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("rejects an orphan subtask", func(t *testing.T) {
		svc, _ := newSubtaskFixture(t)
		_, err := svc.Add(ctx, 1, &models.Subtask{TaskID: 99, Title: "step"})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("requires a title and an actor", func(t *testing.T) {
		svc, _ := newSubtaskFixture(t)
		_, err := svc.Add(ctx, 1, &models.Subtask{TaskID: 1})
		assert.ErrorIs(t, err, ErrTitleRequired)
		_, err = svc.Add(ctx, 0, &models.Subtask{TaskID: 1, Title: "x"})
		assert.ErrorIs(t, err, ErrAuthRequired)
	})
}

func TestSubtaskService_ToggleAndStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, taskRepo := newSubtaskFixture(t)

	parent := &models.Task{Title: "parent", Status: models.StatusTodo, Priority: models.PriorityMedium, CreatedBy: 1}
	require.NoError(t, taskRepo.Store(ctx, parent))

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		st, err := svc.Add(ctx, 1, &models.Subtask{TaskID: parent.ID, Title: title})
		require.NoError(t, err)
		ids = append(ids, st.ID)
	}

	stats, err := svc.Stats(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionStats{Completed: 0, Total: 3, Percentage: 0}, stats)

	toggled, err := svc.ToggleCompletion(ctx, 1, ids[0], true)
	require.NoError(t, err)
	assert.True(t, toggled.IsComplete)

	_, err = svc.ToggleCompletion(ctx, 1, ids[1], true)
	require.NoError(t, err)

	stats, err = svc.Stats(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionStats{Completed: 2, Total: 3, Percentage: 67}, stats)

	// toggling back down
	_, err = svc.ToggleCompletion(ctx, 1, ids[1], false)
	require.NoError(t, err)
	stats, err = svc.Stats(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, stats.Percentage)
}

func TestSubtaskService_StatsEmptyChecklist(t *testing.T) {
	t.Parallel()
	svc, _ := newSubtaskFixture(t)

	stats, err := svc.Stats(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionStats{}, stats)
}

func TestSubtaskService_Remove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, taskRepo := newSubtaskFixture(t)

	parent := &models.Task{Title: "parent", Status: models.StatusTodo, Priority: models.PriorityMedium, CreatedBy: 1}
	require.NoError(t, taskRepo.Store(ctx, parent))
	st, err := svc.Add(ctx, 1, &models.Subtask{TaskID: parent.ID, Title: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, 1, st.ID))
	assert.ErrorIs(t, svc.Remove(ctx, 1, st.ID), repositories.ErrNotFound)
}
