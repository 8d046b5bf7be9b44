package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Email          string `json:"email" binding:"required,email"`
		Name           string `json:"name" binding:"required"`
		Password       string `json:"password" binding:"required,min=8"`
		TelegramChatID int64  `json:"telegram_chat_id"`
		NotifyTelegram bool   `json:"notify_telegram"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][register][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Email:          req.Email,
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
		NotifyTelegram: req.NotifyTelegram,
	}
	if err := h.service.Register(c.Request.Context(), user, req.Password); err != nil {
		log.Printf("[user][register][err] email=%q: %v", req.Email, err)
		respondError(c, err)
		return
	}
	log.Printf("[user][register][ok] id=%d email=%q", user.ID, user.Email)
	c.JSON(http.StatusCreated, user)
}

// GET /me
func (h *UserHandler) Me(c *gin.Context) {
	actor := getActor(c)
	if actor <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), actor)
	if err != nil {
		log.Printf("[user][me][err] id=%d: %v", actor, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
