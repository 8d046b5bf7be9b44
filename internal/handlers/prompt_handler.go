package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type PromptHandler struct {
	service services.PromptService
}

func NewPromptHandler(service services.PromptService) *PromptHandler {
	return &PromptHandler{service: service}
}

// GET /prompts
func (h *PromptHandler) List(c *gin.Context) {
	prompts, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[prompt][list][err] %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompts)
}

// GET /prompts/:id
func (h *PromptHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	prompt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[prompt][getByID][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// POST /prompts
func (h *PromptHandler) Create(c *gin.Context) {
	actor := getActor(c)

	var req struct {
		Title    string `json:"title" binding:"required"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[prompt][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt := &models.Prompt{Title: req.Title, Content: req.Content, Category: req.Category}
	created, err := h.service.Create(c.Request.Context(), actor, prompt)
	if err != nil {
		log.Printf("[prompt][create][err] %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /prompts/:id
func (h *PromptHandler) Update(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Title    string `json:"title" binding:"required"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[prompt][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt := &models.Prompt{Title: req.Title, Content: req.Content, Category: req.Category}
	updated, err := h.service.Update(c.Request.Context(), actor, id, prompt)
	if err != nil {
		log.Printf("[prompt][update][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /prompts/:id
func (h *PromptHandler) Delete(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		log.Printf("[prompt][delete][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
