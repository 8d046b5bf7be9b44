package routes

import (
	"github.com/gin-gonic/gin"

	"opsboard/internal/handlers"
	"opsboard/internal/middleware"
	"opsboard/internal/realtime"
)

func SetupRoutes(
	r *gin.Engine,
	jwtKey []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	subtaskHandler *handlers.SubtaskHandler,
	activityHandler *handlers.ActivityHandler,
	relatedHandler *handlers.RelatedHandler,
	projectHandler *handlers.ProjectHandler,
	reportHandler *handlers.ReportHandler,
	accountHandler *handlers.AccountHandler,
	promptHandler *handlers.PromptHandler,
	searchHandler *handlers.SearchHandler,
	paletteHandler *realtime.PaletteHandler,
	boardFeed *realtime.BoardHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.POST("/register", userHandler.Register)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtKey))

	r.GET("/me", userHandler.Me)
	r.GET("/search", searchHandler.Search)

	// the kanban board lives at the top level: gin does not allow a
	// static /tasks/board sibling next to /tasks/:id
	r.GET("/board", taskHandler.Board)

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/", taskHandler.GetAll)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
		tasks.POST("/:id/move", taskHandler.Move)

		tasks.GET("/:id/subtasks", subtaskHandler.ListByTask)
		tasks.GET("/:id/subtasks/stats", subtaskHandler.Stats)
		tasks.POST("/:id/subtasks", subtaskHandler.Add)

		tasks.GET("/:id/activity", activityHandler.ListByTask)
		tasks.POST("/:id/comments", activityHandler.AddComment)
		tasks.DELETE("/:id/comments/:comment_id", activityHandler.DeleteComment)

		tasks.GET("/:id/related", relatedHandler.List)
		tasks.POST("/:id/related", relatedHandler.Link)
		tasks.DELETE("/:id/related/:related_id", relatedHandler.Unlink)
	}

	// SUBTASKS (addressed by their own id for toggle/delete)
	subtasks := r.Group("/subtasks")
	{
		subtasks.PUT("/:subtask_id", subtaskHandler.Toggle)
		subtasks.DELETE("/:subtask_id", subtaskHandler.Remove)
	}

	// PROJECTS
	projects := r.Group("/projects")
	{
		projects.POST("/", projectHandler.Create)
		projects.GET("/", projectHandler.List)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
		projects.GET("/:id/tasks", projectHandler.Tasks)
		projects.GET("/:id/report", reportHandler.ProjectSummary)
		projects.GET("/:id/report.pdf", reportHandler.ProjectReportPDF)
	}

	// ACCOUNTS
	accounts := r.Group("/accounts")
	{
		accounts.POST("/", accountHandler.Create)
		accounts.GET("/", accountHandler.List)
		accounts.GET("/:id", accountHandler.GetByID)
		accounts.PUT("/:id", accountHandler.Update)
		accounts.DELETE("/:id", accountHandler.Delete)
	}

	// PROMPTS
	prompts := r.Group("/prompts")
	{
		prompts.POST("/", promptHandler.Create)
		prompts.GET("/", promptHandler.List)
		prompts.GET("/:id", promptHandler.GetByID)
		prompts.PUT("/:id", promptHandler.Update)
		prompts.DELETE("/:id", promptHandler.Delete)
	}

	// WEBSOCKETS
	ws := r.Group("/ws")
	{
		ws.GET("/palette", paletteHandler.Serve)
		ws.GET("/board", boardFeed.Serve)
	}

	return r
}
