package main

import (
	"log"

	"github.com/Hernadil/tracker/internal/api/middleware"
	"github.com/Hernadil/tracker/internal/api/routes"
	"github.com/Hernadil/tracker/internal/config"
	"github.com/Hernadil/tracker/internal/config/db"
	"github.com/Hernadil/tracker/internal/domain/audit"
	"github.com/Hernadil/tracker/internal/domain/expense"
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.Employee{},
		&project.Project{},
		&project.Membership{},
		&worklog.WorkLog{},
		&worklog.VideoTitle{},
		&worklog.TitleAction{},
		&worklog.PhotoProgress{},
		&expense.Expense{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Footage storage is optional; the API runs without it
	store, err := storage.NewFootageStore()
	if err != nil {
		log.Printf("Warning: footage storage unavailable: %v", err)
		store = nil
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, store)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
