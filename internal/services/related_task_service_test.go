package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/models"
)

func newRelatedFixture(t *testing.T) (RelatedTaskService, *fakeRelatedRepo, *fakeTaskRepo) {
	t.Helper()
	relRepo := newFakeRelatedRepo()
	taskRepo := newFakeTaskRepo()
	return NewRelatedTaskService(relRepo, taskRepo), relRepo, taskRepo
}

func TestRelatedTaskService_Link(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("links a pair", func(t *testing.T) {
		svc, repo, _ := newRelatedFixture(t)
		require.NoError(t, svc.Link(ctx, 1, 3, 7))

		exists, err := repo.Exists(ctx, 3, 7)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("relinking an existing pair is a successful no-op", func(t *testing.T) {
		svc, repo, _ := newRelatedFixture(t)
		require.NoError(t, svc.Link(ctx, 1, 3, 7))
		require.NoError(t, svc.Link(ctx, 1, 3, 7))
		require.NoError(t, svc.Link(ctx, 1, 7, 3)) // same edge, reversed

		assert.Equal(t, 1, repo.linkCalls)
	})

	t.Run("self link is rejected", func(t *testing.T) {
		svc, _, _ := newRelatedFixture(t)
		assert.ErrorIs(t, svc.Link(ctx, 1, 3, 3), ErrSelfLink)
	})

	t.Run("requires an actor", func(t *testing.T) {
		svc, _, _ := newRelatedFixture(t)
		assert.ErrorIs(t, svc.Link(ctx, 0, 3, 7), ErrAuthRequired)
	})
}

func TestRelatedTaskService_FetchRelated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("resolves ids to task rows", func(t *testing.T) {
		svc, _, taskRepo := newRelatedFixture(t)
		a := &models.Task{Title: "a", Status: models.StatusTodo, Priority: models.PriorityMedium, CreatedBy: 1}
		b := &models.Task{Title: "b", Status: models.StatusTodo, Priority: models.PriorityMedium, CreatedBy: 1}
		require.NoError(t, taskRepo.Store(ctx, a))
		require.NoError(t, taskRepo.Store(ctx, b))
		require.NoError(t, svc.Link(ctx, 1, a.ID, b.ID))

		related, err := svc.FetchRelated(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, related, 1)
		assert.Equal(t, b.ID, related[0].ID)
	})

	t.Run("no relations yields an empty list", func(t *testing.T) {
		svc, _, _ := newRelatedFixture(t)
		related, err := svc.FetchRelated(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, related)
	})

	t.Run("a failed id lookup degrades to an empty list", func(t *testing.T) {
		svc, repo, _ := newRelatedFixture(t)
		repo.relatedErr = assert.AnError

		related, err := svc.FetchRelated(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, related)
	})
}

func TestRelatedTaskService_Unlink(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, _ := newRelatedFixture(t)

	require.NoError(t, svc.Link(ctx, 1, 3, 7))
	require.NoError(t, svc.Unlink(ctx, 1, 7, 3))

	exists, err := repo.Exists(ctx, 3, 7)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, svc.Unlink(ctx, 0, 3, 7), ErrAuthRequired)
}
