package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type RelatedHandler struct {
	service services.RelatedTaskService
}

func NewRelatedHandler(service services.RelatedTaskService) *RelatedHandler {
	return &RelatedHandler{service: service}
}

// GET /tasks/:id/related
func (h *RelatedHandler) List(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	tasks, err := h.service.FetchRelated(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[related][list][err] task=%d: %v", taskID, err)
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// POST /tasks/:id/related { "related_task_id": 7 }
func (h *RelatedHandler) Link(c *gin.Context) {
	actor := getActor(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		RelatedTaskID int64 `json:"related_task_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[related][link][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Link(c.Request.Context(), actor, taskID, req.RelatedTaskID); err != nil {
		log.Printf("[related][link][err] %d<->%d: %v", taskID, req.RelatedTaskID, err)
		respondError(c, err)
		return
	}
	log.Printf("[related][link][ok] %d<->%d", taskID, req.RelatedTaskID)
	c.JSON(http.StatusOK, gin.H{"linked": true})
}

// DELETE /tasks/:id/related/:related_id
func (h *RelatedHandler) Unlink(c *gin.Context) {
	actor := getActor(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	relatedID, err := strconv.ParseInt(c.Param("related_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid related id"})
		return
	}

	if err := h.service.Unlink(c.Request.Context(), actor, taskID, relatedID); err != nil {
		log.Printf("[related][unlink][err] %d<->%d: %v", taskID, relatedID, err)
		respondError(c, err)
		return
	}
	log.Printf("[related][unlink][ok] %d<->%d", taskID, relatedID)
	c.JSON(http.StatusOK, gin.H{"unlinked": true})
}
