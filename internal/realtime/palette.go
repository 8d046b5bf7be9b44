// internal/realtime/palette.go
package realtime

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

const paletteDebounce = 300 * time.Millisecond

// PaletteHandler serves the command-palette websocket. Keystrokes are
// debounced server-side; every issued fan-out carries a generation
// number and a response whose generation is no longer current is
// discarded, so a slow old query can never overwrite fresher results.
type PaletteHandler struct {
	search   services.SearchService
	upgrader websocket.Upgrader
}

func NewPaletteHandler(search services.SearchService) *PaletteHandler {
	return &PaletteHandler{
		search: search,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// GET /ws/palette
func (h *PaletteHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[palette][upgrade][err] %v", err)
		return
	}
	session := &paletteSession{
		conn:     conn,
		search:   h.search,
		debounce: paletteDebounce,
	}
	session.run(c.Request.Context())
}

type paletteSession struct {
	conn     *websocket.Conn
	search   services.SearchService
	debounce time.Duration
}

type paletteQuery struct {
	Query string `json:"query"`
}

type paletteResult struct {
	Query   string                `json:"query"`
	Results []models.SearchResult `json:"results"`
}

type fanoutResponse struct {
	gen     uint64
	query   string
	results []models.SearchResult
	err     error
}

func (s *paletteSession) run(ctx context.Context) {
	defer s.conn.Close()

	// closed when run returns so readLoop can never block on a send to a
	// session nobody drains anymore
	done := make(chan struct{})
	defer close(done)

	queries := make(chan string, 1)
	go s.readLoop(queries, done)

	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	responses := make(chan fanoutResponse, 4)

	var pending string
	var gen uint64

	for {
		select {
		case <-ctx.Done():
			return

		case q, ok := <-queries:
			if !ok {
				return
			}
			// A newer keystroke supersedes the pending one; the older
			// query is never issued.
			pending = q
			stopTimer(timer)
			timer.Reset(s.debounce)

		case <-timer.C:
			gen++
			go dispatch(ctx, s.search, pending, gen, responses)

		case resp := <-responses:
			if resp.gen != gen {
				// stale fan-out, a newer query has been issued since
				continue
			}
			if resp.err != nil {
				log.Printf("[palette][search][err] q=%q: %v", resp.query, resp.err)
				continue
			}
			if err := s.conn.WriteJSON(paletteResult{Query: resp.query, Results: resp.results}); err != nil {
				log.Printf("[palette][write][err] %v", err)
				return
			}
		}
	}
}

func (s *paletteSession) readLoop(queries chan string, done <-chan struct{}) {
	defer close(queries)
	for {
		var msg paletteQuery
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}
		select {
		case queries <- msg.Query:
		default:
			// drop the buffered keystroke, the newest one wins
			select {
			case <-queries:
			default:
			}
			select {
			case queries <- msg.Query:
			case <-done:
				return
			}
		}
	}
}

func dispatch(ctx context.Context, search services.SearchService, query string, gen uint64, out chan<- fanoutResponse) {
	results, err := search.Search(ctx, query)
	out <- fanoutResponse{gen: gen, query: query, results: results, err: err}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
