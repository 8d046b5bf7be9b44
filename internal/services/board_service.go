// internal/services/board_service.go
package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"opsboard/internal/models"
)

// Board is the kanban view: every task sits in exactly one of the three
// status columns.
type Board struct {
	Columns []BoardColumn `json:"columns"`
}

type BoardColumn struct {
	Status models.TaskStatus `json:"status"`
	Tasks  []models.Task     `json:"tasks"`
}

var boardOrder = []models.TaskStatus{
	models.StatusTodo,
	models.StatusInProgress,
	models.StatusCompleted,
}

// BoardService builds the board and commits drag-and-drop moves.
type BoardService interface {
	Board(ctx context.Context, projectID *int64) (*Board, error)
	// Move updates the task status and returns the refetched board. A
	// drop on the current column is a no-op: no update is issued. While
	// one move is committing, further moves fail with ErrMoveInFlight.
	Move(ctx context.Context, actor int64, taskID int64, to models.TaskStatus) (*Board, error)
}

type boardService struct {
	tasks    TaskService
	updating atomic.Bool
}

func NewBoardService(tasks TaskService) BoardService {
	return &boardService{tasks: tasks}
}

func (s *boardService) Board(ctx context.Context, projectID *int64) (*Board, error) {
	list, err := s.tasks.GetAll(ctx, models.TaskFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	byStatus := map[models.TaskStatus][]models.Task{}
	for _, t := range list {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}
	board := &Board{}
	for _, status := range boardOrder {
		board.Columns = append(board.Columns, BoardColumn{Status: status, Tasks: byStatus[status]})
	}
	return board, nil
}

func (s *boardService) Move(ctx context.Context, actor int64, taskID int64, to models.TaskStatus) (*Board, error) {
	if actor <= 0 {
		return nil, ErrAuthRequired
	}
	if !models.IsValidTaskStatus(to) {
		return nil, ErrInvalidStatus
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == to {
		// Dropped back on its own column: nothing to commit.
		return s.Board(ctx, task.ProjectID)
	}

	if !s.updating.CompareAndSwap(false, true) {
		return nil, ErrMoveInFlight
	}
	defer s.updating.Store(false)

	if _, err := s.tasks.Update(ctx, actor, taskID, models.TaskUpdate{Status: &to}); err != nil {
		return nil, err
	}
	// Full refetch rather than patching the moved card in place.
	return s.Board(ctx, task.ProjectID)
}

// DragState tracks one drag gesture. The interaction is a small machine:
// idle -> dragging -> committing -> idle, with cancel returning to idle.
type DragState int

const (
	DragIdle DragState = iota
	DragActive
	DragCommitting
)

var (
	ErrNoDragInProgress = errors.New("no drag in progress")
	ErrDragBusy         = errors.New("drag already in progress")
)

// DragSession serializes one client's drag gestures. Events arriving in
// the wrong state are rejected rather than queued, mirroring how a
// dropped card simply resets when a commit is already running.
type DragSession struct {
	mu     sync.Mutex
	state  DragState
	taskID int64
}

func NewDragSession() *DragSession {
	return &DragSession{}
}

func (d *DragSession) Start(taskID int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != DragIdle {
		return ErrDragBusy
	}
	d.state = DragActive
	d.taskID = taskID
	return nil
}

// BeginCommit transitions dragging -> committing and returns the dragged
// task id. The caller must finish with Finish regardless of outcome.
func (d *DragSession) BeginCommit() (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != DragActive {
		return 0, ErrNoDragInProgress
	}
	d.state = DragCommitting
	return d.taskID, nil
}

func (d *DragSession) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DragActive {
		d.state = DragIdle
		d.taskID = 0
	}
}

func (d *DragSession) Finish() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = DragIdle
	d.taskID = 0
}

func (d *DragSession) State() DragState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}
