package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/config"
	"github.com/smartunibot/unibot-api/internal/database"
	"github.com/smartunibot/unibot-api/internal/handlers"
	"github.com/smartunibot/unibot-api/internal/middleware"
	"github.com/smartunibot/unibot-api/internal/repository"
	"github.com/smartunibot/unibot-api/internal/services"
	"github.com/smartunibot/unibot-api/internal/sheets"
)

func main() {
	// Load configuration; misconfigured credentials fail here, not on
	// the first request that needs them
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	classRepo := repository.NewClassRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo)
	taskService := services.NewTaskService(taskRepo)
	scheduleService := services.NewScheduleService(classRepo)
	importService := services.NewImportService(taskRepo, classRepo)

	var aiService *services.AIService
	if cfg.ChatConfigured() {
		aiService = services.NewAIService(cfg)
	} else {
		log.Println("LLM chat disabled: no provider credentials configured")
	}

	var sheetsClient *sheets.Client
	if cfg.SheetsConfigured() {
		sheetsClient = sheets.NewClient(cfg.SheetsSpreadsheetID, cfg.SheetsAPIKey)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	chatHandler := handlers.NewChatHandler(scheduleService, taskService, aiService)
	importHandler := handlers.NewImportHandler(importService, sheetsClient, cfg.SheetsTaskRange, cfg.SheetsClassRange)
	adminHandler := handlers.NewAdminHandler(userRepo, roleRepo)

	// Middleware shared across protected route groups
	requireAuth := middleware.RequireAuth(sessionRepo)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Smart UNI-BOT API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Schedule routes (protected)
		schedule := api.Group("/schedule")
		schedule.Use(requireAuth)
		{
			schedule.GET("", scheduleHandler.ListClasses)
			schedule.POST("", scheduleHandler.CreateClass)
			schedule.PUT("/:id", scheduleHandler.UpdateClass)
			schedule.DELETE("/:id", scheduleHandler.DeleteClass)
			schedule.DELETE("", scheduleHandler.ClearSemester)
		}

		// Chatbot routes (protected)
		chatbot := api.Group("/chatbot")
		chatbot.Use(requireAuth)
		{
			chatbot.POST("/query", chatHandler.Query)
		}
		api.POST("/chat", requireAuth, chatHandler.Chat)

		// Spreadsheet import (protected)
		imports := api.Group("/import")
		imports.Use(requireAuth)
		{
			imports.POST("/tasks", importHandler.ImportTasks)
			imports.POST("/classes", importHandler.ImportClasses)
		}

		// Admin routes (role checked server-side per request)
		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireUserManagement(roleRepo))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
