package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"opsboard/internal/config"
	"opsboard/internal/handlers"
	"opsboard/internal/pdf"
	"opsboard/internal/realtime"
	"opsboard/internal/repositories"
	"opsboard/internal/routes"
	"opsboard/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "opsboard/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	subtaskRepo := repositories.NewSubtaskRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	relatedRepo := repositories.NewRelatedTaskRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	promptRepo := repositories.NewPromptRepository(db)

	// === Services ===
	jwtKey := []byte(cfg.Auth.JWTSecret)
	authService := services.NewAuthService(jwtKey)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService, err := services.NewTelegramService(cfg.Telegram.BotToken)
	if err != nil {
		log.Printf("[telegram][init][err] %v (notifications disabled)", err)
	}

	userService := services.NewUserService(userRepo, emailService, authService)
	activityService := services.NewActivityService(activityRepo)
	taskService := services.NewTaskService(taskRepo, activityService)
	subtaskService := services.NewSubtaskService(subtaskRepo, taskRepo)
	relatedService := services.NewRelatedTaskService(relatedRepo, taskRepo)
	boardService := services.NewBoardService(taskService)
	projectService := services.NewProjectService(projectRepo)
	accountService := services.NewAccountService(accountRepo, cfg.VaultKey())
	promptService := services.NewPromptService(promptRepo)
	searchService := services.NewSearchService(projectRepo, taskRepo, promptRepo, accountRepo)
	reportService := services.NewReportService(projectRepo, taskRepo)

	pdfGen := pdf.NewReportGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService, boardService, telegramService, userRepo)
	subtaskHandler := handlers.NewSubtaskHandler(subtaskService)
	activityHandler := handlers.NewActivityHandler(activityService)
	relatedHandler := handlers.NewRelatedHandler(relatedService)
	projectHandler := handlers.NewProjectHandler(projectService, taskService)
	reportHandler := handlers.NewReportHandler(reportService, pdfGen)
	accountHandler := handlers.NewAccountHandler(accountService)
	promptHandler := handlers.NewPromptHandler(promptService)
	searchHandler := handlers.NewSearchHandler(searchService)
	paletteHandler := realtime.NewPaletteHandler(searchService)
	boardFeed := realtime.NewBoardHandler(boardService)

	// === Reminder sweeper ===
	reminder := services.NewReminderService(taskRepo, userRepo, emailService, telegramService, cfg.Reminder.Interval)
	reminderCtx, stopReminder := context.WithCancel(context.Background())
	defer stopReminder()
	go reminder.Run(reminderCtx)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		jwtKey,
		authHandler,
		userHandler,
		taskHandler,
		subtaskHandler,
		activityHandler,
		relatedHandler,
		projectHandler,
		reportHandler,
		accountHandler,
		promptHandler,
		searchHandler,
		paletteHandler,
		boardFeed,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
