package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type SubtaskHandler struct {
	service services.SubtaskService
}

func NewSubtaskHandler(service services.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{service: service}
}

// GET /tasks/:id/subtasks
func (h *SubtaskHandler) ListByTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	subtasks, err := h.service.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[subtask][list][err] task=%d: %v", taskID, err)
		respondError(c, err)
		return
	}
	if subtasks == nil {
		subtasks = []models.Subtask{}
	}
	c.JSON(http.StatusOK, subtasks)
}

// GET /tasks/:id/subtasks/stats
func (h *SubtaskHandler) Stats(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	stats, err := h.service.Stats(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[subtask][stats][err] task=%d: %v", taskID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// POST /tasks/:id/subtasks
func (h *SubtaskHandler) Add(c *gin.Context) {
	actor := getActor(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Title      string `json:"title" binding:"required"`
		IsComplete bool   `json:"is_complete"`
		DueDate    string `json:"due_date"` // RFC3339
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[subtask][add][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		t, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			log.Printf("[subtask][add][err] invalid due_date=%q: %v", req.DueDate, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date (RFC3339)"})
			return
		}
		dueDate = &t
	}

	subtask := &models.Subtask{
		TaskID:     taskID,
		Title:      req.Title,
		IsComplete: req.IsComplete,
		DueDate:    dueDate,
	}
	created, err := h.service.Add(c.Request.Context(), actor, subtask)
	if err != nil {
		log.Printf("[subtask][add][err] task=%d: %v", taskID, err)
		respondError(c, err)
		return
	}
	log.Printf("[subtask][add][ok] id=%s task=%d", created.ID, taskID)
	c.JSON(http.StatusCreated, created)
}

// PUT /subtasks/:subtask_id { "is_complete": true }
func (h *SubtaskHandler) Toggle(c *gin.Context) {
	actor := getActor(c)
	id := c.Param("subtask_id")

	var req struct {
		IsComplete *bool `json:"is_complete" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[subtask][toggle][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.ToggleCompletion(c.Request.Context(), actor, id, *req.IsComplete)
	if err != nil {
		log.Printf("[subtask][toggle][err] id=%s: %v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[subtask][toggle][ok] id=%s complete=%v", id, *req.IsComplete)
	c.JSON(http.StatusOK, updated)
}

// DELETE /subtasks/:subtask_id
func (h *SubtaskHandler) Remove(c *gin.Context) {
	actor := getActor(c)
	id := c.Param("subtask_id")

	if err := h.service.Remove(c.Request.Context(), actor, id); err != nil {
		log.Printf("[subtask][remove][err] id=%s: %v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[subtask][remove][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}
