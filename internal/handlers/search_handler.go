package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/services"
)

type SearchHandler struct {
	service services.SearchService
}

func NewSearchHandler(service services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// @Summary      Command palette search
// @Description  Fans out the query across projects, tasks, prompts and accounts and merges the matching static pages/actions. An empty query returns the static entries only.
// @Tags         Search
// @Produce      json
// @Param        q  query     string  false  "free-text query"
// @Success      200  {array}   models.SearchResult
// @Failure      500  {object}  map[string]string
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	results, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("[search][err] q=%q: %v", query, err)
		respondError(c, err)
		return
	}
	log.Printf("[search][ok] q=%q count=%d", query, len(results))
	c.JSON(http.StatusOK, results)
}
