package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type ActivityHandler struct {
	service services.ActivityService
}

func NewActivityHandler(service services.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GET /tasks/:id/activity
func (h *ActivityHandler) ListByTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	activities, err := h.service.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[activity][list][err] task=%d: %v", taskID, err)
		respondError(c, err)
		return
	}
	if activities == nil {
		activities = []models.TaskActivity{}
	}
	c.JSON(http.StatusOK, activities)
}

// POST /tasks/:id/comments { "message": "..." }
func (h *ActivityHandler) AddComment(c *gin.Context) {
	actor := getActor(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[comment][add][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), actor, taskID, req.Message)
	if err != nil {
		log.Printf("[comment][add][err] task=%d: %v", taskID, err)
		respondError(c, err)
		return
	}
	log.Printf("[comment][add][ok] id=%s task=%d", comment.ID, taskID)
	c.JSON(http.StatusCreated, comment)
}

// DELETE /tasks/:id/comments/:comment_id
func (h *ActivityHandler) DeleteComment(c *gin.Context) {
	actor := getActor(c)
	commentID := c.Param("comment_id")

	if err := h.service.DeleteComment(c.Request.Context(), actor, commentID); err != nil {
		log.Printf("[comment][delete][err] id=%s: %v", commentID, err)
		respondError(c, err)
		return
	}
	log.Printf("[comment][delete][ok] id=%s", commentID)
	c.Status(http.StatusNoContent)
}
