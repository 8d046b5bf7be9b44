package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/models"
)

func newBoardFixture(t *testing.T) (BoardService, TaskService, *fakeTaskRepo) {
	t.Helper()
	repo := newFakeTaskRepo()
	tasks := NewTaskService(repo, NewActivityService(&fakeActivityRepo{}))
	return NewBoardService(tasks), tasks, repo
}

func TestBoardService_Board(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	board, tasks, _ := newBoardFixture(t)

	seedTask(t, tasks, models.Task{Title: "a"})
	seedTask(t, tasks, models.Task{Title: "b", Status: models.StatusInProgress})
	seedTask(t, tasks, models.Task{Title: "c", Status: models.StatusCompleted})
	seedTask(t, tasks, models.Task{Title: "d"})

	got, err := board.Board(ctx, nil)
	require.NoError(t, err)
	require.Len(t, got.Columns, 3)

	assert.Equal(t, models.StatusTodo, got.Columns[0].Status)
	assert.Len(t, got.Columns[0].Tasks, 2)
	assert.Equal(t, models.StatusInProgress, got.Columns[1].Status)
	assert.Len(t, got.Columns[1].Tasks, 1)
	assert.Equal(t, models.StatusCompleted, got.Columns[2].Status)
	assert.Len(t, got.Columns[2].Tasks, 1)
}

func TestBoardService_Move(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("moves the task and returns the refreshed board", func(t *testing.T) {
		board, tasks, _ := newBoardFixture(t)
		created := seedTask(t, tasks, models.Task{Title: "a"})

		got, err := board.Move(ctx, 1, created.ID, models.StatusInProgress)
		require.NoError(t, err)
		assert.Empty(t, got.Columns[0].Tasks)
		require.Len(t, got.Columns[1].Tasks, 1)
		assert.Equal(t, created.ID, got.Columns[1].Tasks[0].ID)
	})

	t.Run("drop on the current column issues no update", func(t *testing.T) {
		board, tasks, repo := newBoardFixture(t)
		created := seedTask(t, tasks, models.Task{Title: "a"})

		before := repo.updateCalls
		_, err := board.Move(ctx, 1, created.ID, models.StatusTodo)
		require.NoError(t, err)
		assert.Equal(t, before, repo.updateCalls)
	})

	t.Run("rejects unknown target column", func(t *testing.T) {
		board, tasks, _ := newBoardFixture(t)
		created := seedTask(t, tasks, models.Task{Title: "a"})

		_, err := board.Move(ctx, 1, created.ID, "done")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("requires an actor", func(t *testing.T) {
		board, _, _ := newBoardFixture(t)
		_, err := board.Move(ctx, 0, 1, models.StatusTodo)
		assert.ErrorIs(t, err, ErrAuthRequired)
	})
}

// stalledTaskRepo parks the first Update until released so a second move
// can arrive while the first one is still committing.
type stalledTaskRepo struct {
	*fakeTaskRepo
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *stalledTaskRepo) Update(ctx context.Context, task *models.Task) error {
	r.once.Do(func() {
		close(r.entered)
		<-r.release
	})
	return r.fakeTaskRepo.Update(ctx, task)
}

func TestBoardService_Move_SecondMoveWhileCommitting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stalledTaskRepo{
		fakeTaskRepo: newFakeTaskRepo(),
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	tasks := NewTaskService(repo, NewActivityService(&fakeActivityRepo{}))
	board := NewBoardService(tasks)

	first := seedTask(t, tasks, models.Task{Title: "a"})
	second := seedTask(t, tasks, models.Task{Title: "b"})

	firstDone := make(chan error, 1)
	go func() {
		_, err := board.Move(ctx, 1, first.ID, models.StatusInProgress)
		firstDone <- err
	}()
	<-repo.entered

	// The first commit is parked inside the repository write. A move
	// arriving now must fail fast and leave its task untouched, not queue.
	_, err := board.Move(ctx, 1, second.ID, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrMoveInFlight)

	got, err := tasks.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, got.Status)

	close(repo.release)
	require.NoError(t, <-firstDone)

	got, err = tasks.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)
}

func TestDragSession(t *testing.T) {
	t.Parallel()

	t.Run("full gesture", func(t *testing.T) {
		d := NewDragSession()
		assert.Equal(t, DragIdle, d.State())

		require.NoError(t, d.Start(5))
		assert.Equal(t, DragActive, d.State())

		id, err := d.BeginCommit()
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
		assert.Equal(t, DragCommitting, d.State())

		d.Finish()
		assert.Equal(t, DragIdle, d.State())
	})

	t.Run("second drag while active is rejected", func(t *testing.T) {
		d := NewDragSession()
		require.NoError(t, d.Start(5))
		assert.ErrorIs(t, d.Start(6), ErrDragBusy)
	})

	t.Run("drop without a drag is rejected", func(t *testing.T) {
		d := NewDragSession()
		_, err := d.BeginCommit()
		assert.ErrorIs(t, err, ErrNoDragInProgress)
	})

	t.Run("drop during commit is discarded", func(t *testing.T) {
		d := NewDragSession()
		require.NoError(t, d.Start(5))
		_, err := d.BeginCommit()
		require.NoError(t, err)

		_, err = d.BeginCommit()
		assert.ErrorIs(t, err, ErrNoDragInProgress)
	})

	t.Run("cancel returns to idle only from active", func(t *testing.T) {
		d := NewDragSession()
		require.NoError(t, d.Start(5))
		d.Cancel()
		assert.Equal(t, DragIdle, d.State())

		require.NoError(t, d.Start(6))
		_, err := d.BeginCommit()
		require.NoError(t, err)
		d.Cancel() // no-op while committing
		assert.Equal(t, DragCommitting, d.State())
	})
}
