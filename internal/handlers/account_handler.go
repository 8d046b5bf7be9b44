package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type AccountHandler struct {
	service services.AccountService
}

func NewAccountHandler(service services.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// GET /accounts — secrets are never included in the listing
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[account][list][err] %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// GET /accounts/:id — includes the unsealed secret
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	account, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("[account][getByID][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// POST /accounts
func (h *AccountHandler) Create(c *gin.Context) {
	actor := getActor(c)

	var req struct {
		Name       string `json:"name" binding:"required"`
		ServiceURL string `json:"service_url"`
		Username   string `json:"username"`
		Secret     string `json:"secret"`
		ProjectID  *int64 `json:"project_id"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[account][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := &models.Account{
		Name:       req.Name,
		ServiceURL: req.ServiceURL,
		Username:   req.Username,
		Secret:     req.Secret,
		ProjectID:  req.ProjectID,
		Notes:      req.Notes,
	}
	created, err := h.service.Create(c.Request.Context(), actor, account)
	if err != nil {
		log.Printf("[account][create][err] %v", err)
		respondError(c, err)
		return
	}
	log.Printf("[account][create][ok] id=%d name=%q", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// PUT /accounts/:id
func (h *AccountHandler) Update(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Name       string `json:"name" binding:"required"`
		ServiceURL string `json:"service_url"`
		Username   string `json:"username"`
		Secret     string `json:"secret"` // empty keeps the stored secret
		ProjectID  *int64 `json:"project_id"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[account][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := &models.Account{
		Name:       req.Name,
		ServiceURL: req.ServiceURL,
		Username:   req.Username,
		Secret:     req.Secret,
		ProjectID:  req.ProjectID,
		Notes:      req.Notes,
	}
	updated, err := h.service.Update(c.Request.Context(), actor, id, account)
	if err != nil {
		log.Printf("[account][update][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /accounts/:id
func (h *AccountHandler) Delete(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		log.Printf("[account][delete][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[account][delete][ok] id=%d", id)
	c.Status(http.StatusNoContent)
}
