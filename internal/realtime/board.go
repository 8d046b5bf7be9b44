// internal/realtime/board.go
package realtime

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

// BoardHandler drives the kanban drag-and-drop interaction over a
// websocket: drag_start -> (drag_cancel | drop). Each connection owns one
// DragSession, so events arriving in the wrong state are rejected and a
// drop issued while a commit is running is simply discarded.
type BoardHandler struct {
	board    services.BoardService
	upgrader websocket.Upgrader
}

func NewBoardHandler(board services.BoardService) *BoardHandler {
	return &BoardHandler{
		board: board,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 8192,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type boardEvent struct {
	Type   string            `json:"type"` // drag_start | drag_cancel | drop
	TaskID int64             `json:"task_id,omitempty"`
	To     models.TaskStatus `json:"to,omitempty"`
}

type boardMessage struct {
	Type  string          `json:"type"` // board | error
	Board *services.Board `json:"board,omitempty"`
	Error string          `json:"error,omitempty"`
}

// GET /ws/board
func (h *BoardHandler) Serve(c *gin.Context) {
	userID := int64(0)
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			userID = id
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[board][upgrade][err] %v", err)
		return
	}
	defer conn.Close()

	drag := services.NewDragSession()
	for {
		var event boardEvent
		if err := conn.ReadJSON(&event); err != nil {
			return
		}
		switch event.Type {
		case "drag_start":
			if err := drag.Start(event.TaskID); err != nil {
				writeBoardError(conn, err)
			}
		case "drag_cancel":
			drag.Cancel()
		case "drop":
			taskID, err := drag.BeginCommit()
			if err != nil {
				writeBoardError(conn, err)
				continue
			}
			board, err := h.board.Move(c.Request.Context(), userID, taskID, event.To)
			drag.Finish()
			if err != nil {
				// the card stays where it was; the client re-renders from
				// its last known board
				writeBoardError(conn, err)
				continue
			}
			if err := conn.WriteJSON(boardMessage{Type: "board", Board: board}); err != nil {
				return
			}
		default:
			writeBoardError(conn, errors.New("unknown event type"))
		}
	}
}

func writeBoardError(conn *websocket.Conn, err error) {
	if werr := conn.WriteJSON(boardMessage{Type: "error", Error: err.Error()}); werr != nil {
		log.Printf("[board][write][err] %v", werr)
	}
}
