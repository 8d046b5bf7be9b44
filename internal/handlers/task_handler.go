package handlers

import (
	"html"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
	"opsboard/internal/services"
)

type TaskHandler struct {
	service services.TaskService
	board   services.BoardService

	// telegram notifications, optional
	tg    *services.TelegramService
	users repositories.UserRepository
}

func NewTaskHandler(service services.TaskService, board services.BoardService, tg *services.TelegramService, users repositories.UserRepository) *TaskHandler {
	return &TaskHandler{service: service, board: board, tg: tg, users: users}
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		Title       string              `json:"title" binding:"required"`
		Description string              `json:"description"`
		ProjectID   *int64              `json:"project_id"`
		AssignedTo  *int64              `json:"assigned_to"`
		Priority    models.TaskPriority `json:"priority"` // low|medium|high|urgent
		Status      models.TaskStatus   `json:"status"`   // todo|in_progress|completed
		Deadline    string              `json:"deadline"`    // RFC3339
		ReminderAt  string              `json:"reminder_at"` // RFC3339
	}

	actor := getActor(c)
	log.Printf("[task][create] call by userID=%d", actor)

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, ok := parseOptionalTime(c, "deadline", req.Deadline)
	if !ok {
		return
	}
	reminderAt, ok := parseOptionalTime(c, "reminder_at", req.ReminderAt)
	if !ok {
		return
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Status:      req.Status,
		Deadline:    deadline,
		ReminderAt:  reminderAt,
	}

	created, err := h.service.Create(c.Request.Context(), actor, task)
	if err != nil {
		log.Printf("[task][create][err] %v", err)
		respondError(c, err)
		return
	}
	log.Printf("[task][create][ok] id=%d title=%q", created.ID, created.Title)
	c.JSON(http.StatusCreated, created)

	h.notifyAssignee(c, created, "📌 New task")
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][getByID][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// GET /tasks
func (h *TaskHandler) GetAll(c *gin.Context) {
	var filter models.TaskFilter
	if v, ok := c.GetQuery("project_id"); ok {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.ProjectID = &id
		} else {
			log.Printf("[task][list][warn] bad project_id=%q: %v", v, err)
		}
	}
	if v, ok := c.GetQuery("assigned_to"); ok {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.AssignedTo = &id
		} else {
			log.Printf("[task][list][warn] bad assigned_to=%q: %v", v, err)
		}
	}
	if v, ok := c.GetQuery("created_by"); ok {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CreatedBy = &id
		}
	}
	if v, ok := c.GetQuery("status"); ok {
		st := models.TaskStatus(v)
		filter.Status = &st
	}

	tasks, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		respondError(c, err)
		return
	}
	log.Printf("[task][list][ok] count=%d", len(tasks))
	c.JSON(http.StatusOK, tasks)
}

// PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	log.Printf("[task][update] call by userID=%d id=%d", actor, id)

	var req struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		ProjectID   *string              `json:"project_id"` // arrives as string from forms
		AssignedTo  *int64               `json:"assigned_to"`
		Priority    *models.TaskPriority `json:"priority"`
		Status      *models.TaskStatus   `json:"status"`
		Deadline    *string              `json:"deadline"` // RFC3339, "" clears
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := models.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		Status:      req.Status,
	}
	if req.ProjectID != nil {
		pid, err := strconv.ParseInt(*req.ProjectID, 10, 64)
		if err != nil {
			log.Printf("[task][update][err] invalid project_id=%q: %v", *req.ProjectID, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
			return
		}
		upd.ProjectID = &pid
	}
	if req.Deadline != nil && *req.Deadline != "" {
		t, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			log.Printf("[task][update][err] invalid deadline=%q: %v", *req.Deadline, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline (RFC3339)"})
			return
		}
		upd.Deadline = &t
	}

	updated, err := h.service.Update(c.Request.Context(), actor, id, upd)
	if err != nil {
		log.Printf("[task][update][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][update][ok] id=%d", id)
	c.JSON(http.StatusOK, updated)

	h.notifyAssignee(c, updated, "✏️ Task updated")
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}
	log.Printf("[task][delete] call by userID=%d id=%d", actor, id)

	current, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		log.Printf("[task][delete][err] id=%d: %v", id, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][delete][ok] id=%d", id)

	h.notifyAssignee(c, current, "🗑️ Task deleted")

	c.Status(http.StatusNoContent)
}

// GET /board?project_id=1
func (h *TaskHandler) Board(c *gin.Context) {
	var projectID *int64
	if v, ok := c.GetQuery("project_id"); ok {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			projectID = &id
		}
	}
	board, err := h.board.Board(c.Request.Context(), projectID)
	if err != nil {
		log.Printf("[board][get][err] %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// POST /tasks/:id/move { "to": "in_progress" }
func (h *TaskHandler) Move(c *gin.Context) {
	actor := getActor(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body struct {
		To models.TaskStatus `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[board][move][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.board.Move(c.Request.Context(), actor, id, body.To)
	if err != nil {
		log.Printf("[board][move][err] id=%d to=%q: %v", id, body.To, err)
		respondError(c, err)
		return
	}
	log.Printf("[board][move][ok] id=%d to=%q", id, body.To)
	c.JSON(http.StatusOK, board)
}

func parseOptionalTime(c *gin.Context, field, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Printf("[task][err] invalid %s=%q: %v", field, value, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field + " (RFC3339)"})
		return nil, false
	}
	return &t, true
}

// === TG helpers ===
func (h *TaskHandler) notifyAssignee(c *gin.Context, t *models.Task, prefix string) {
	if h.tg == nil || h.users == nil || t == nil || t.AssignedTo == nil {
		return
	}
	chatID, allow, err := h.users.TelegramSettings(c.Request.Context(), *t.AssignedTo)
	if err != nil {
		log.Printf("[task][notify] get telegram settings failed: assignee=%d err=%v", *t.AssignedTo, err)
		return
	}
	if !allow || chatID == 0 {
		return
	}
	_ = h.tg.SendMessage(chatID, h.formatTask(prefix, t))
}

func (h *TaskHandler) formatTask(prefix string, t *models.Task) string {
	deadline := "—"
	if t.Deadline != nil {
		deadline = t.Deadline.Format("2006-01-02 15:04")
	}
	title := html.EscapeString(t.Title) // parse_mode=HTML
	return prefix + "\n" +
		"• <b>" + title + "</b>\n" +
		"• Status: <code>" + string(t.Status) + "</code>\n" +
		"• Priority: <code>" + string(t.Priority) + "</code>\n" +
		"• Deadline: <code>" + deadline + "</code>"
}
