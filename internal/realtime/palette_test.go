package realtime

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/models"
)

type stubSearch struct {
	calls atomic.Int64
}

func (s *stubSearch) Search(_ context.Context, query string) ([]models.SearchResult, error) {
	s.calls.Add(1)
	return []models.SearchResult{
		{Kind: models.KindTask, ID: 1, Title: query, Route: "/tasks/1"},
	}, nil
}

func dialPalette(t *testing.T, search *stubSearch) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/palette", NewPaletteHandler(search).Serve)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/palette"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestPaletteSession_DebouncesToNewestKeystroke(t *testing.T) {
	search := &stubSearch{}
	conn := dialPalette(t, search)

	// A fast typing burst. The buffer holds one pending keystroke, so the
	// later ones displace the earlier ones and only the final query runs.
	for _, q := range []string{"a", "ap", "apo", "apollo"} {
		require.NoError(t, conn.WriteJSON(paletteQuery{Query: q}))
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var got paletteResult
	require.NoError(t, conn.ReadJSON(&got))

	assert.Equal(t, "apollo", got.Query)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "apollo", got.Results[0].Title)
	assert.Equal(t, int64(1), search.calls.Load(), "superseded keystrokes must never be issued")
}

func TestPaletteSession_SequentialQueriesEachAnswered(t *testing.T) {
	search := &stubSearch{}
	conn := dialPalette(t, search)

	for _, q := range []string{"first", "second"} {
		require.NoError(t, conn.WriteJSON(paletteQuery{Query: q}))

		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		var got paletteResult
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, q, got.Query)
	}
	assert.Equal(t, int64(2), search.calls.Load())
}
