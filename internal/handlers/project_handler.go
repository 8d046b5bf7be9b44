package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type ProjectHandler struct {
	service services.ProjectService
	tasks   services.TaskService
}

func NewProjectHandler(service services.ProjectService, tasks services.TaskService) *ProjectHandler {
	return &ProjectHandler{service: service, tasks: tasks}
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[project][list][err] %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[project][getByID][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GET /projects/:id/tasks
func (h *ProjectHandler) Tasks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tasks, err := h.tasks.GetByProjectID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[project][tasks][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	actor := getActor(c)

	var req struct {
		Name        string               `json:"name" binding:"required"`
		Description string               `json:"description"`
		Status      models.ProjectStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[project][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &models.Project{Name: req.Name, Description: req.Description, Status: req.Status}
	created, err := h.service.Create(c.Request.Context(), actor, project)
	if err != nil {
		log.Printf("[project][create][err] %v", err)
		respondError(c, err)
		return
	}
	log.Printf("[project][create][ok] id=%d name=%q", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string               `json:"name" binding:"required"`
		Description string               `json:"description"`
		Status      models.ProjectStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[project][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &models.Project{Name: req.Name, Description: req.Description, Status: req.Status}
	updated, err := h.service.Update(c.Request.Context(), actor, id, project)
	if err != nil {
		log.Printf("[project][update][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		log.Printf("[project][delete][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[project][delete][ok] id=%d", id)
	c.Status(http.StatusNoContent)
}
