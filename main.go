package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/estateplan/config"
	"github.com/epeers/estateplan/docs"
	"github.com/epeers/estateplan/internal/cache"
	"github.com/epeers/estateplan/internal/database"
	"github.com/epeers/estateplan/internal/handlers"
	"github.com/epeers/estateplan/internal/middleware"
	"github.com/epeers/estateplan/internal/repository"
	"github.com/epeers/estateplan/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Estate Plan API
// @version 1.0
// @description Estate distribution scenarios and estate plan validation for advisor clients.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Create context for initialization
	ctx := context.Background()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize caches
	memCache := cache.NewMemoryCache(cfg.ScenarioCacheTTL)

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db.Pool)
	assetRepo := repository.NewAssetRepository(db.Pool)
	heirRepo := repository.NewHeirRepository(db.Pool)
	planRepo := repository.NewEstatePlanRepository(db.Pool)

	// Initialize services
	clientSvc := services.NewClientService(clientRepo, assetRepo, heirRepo, planRepo, memCache)
	scenarioSvc := services.NewScenarioService(clientSvc, memCache)
	validationSvc := services.NewValidationService(clientSvc, memCache)

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(clientSvc)
	userHandler := handlers.NewUserHandler(clientSvc)
	assetHandler := handlers.NewAssetHandler(clientSvc)
	planHandler := handlers.NewPlanHandler(clientSvc, validationSvc)
	scenarioHandler := handlers.NewScenarioHandler(scenarioSvc)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.ValidateAdvisor())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API docs
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Client routes
	router.POST("/clients", clientHandler.Create)
	router.GET("/clients/:id", clientHandler.Get)
	router.PUT("/clients/:id", clientHandler.Update)
	router.DELETE("/clients/:id", clientHandler.Delete)

	// Intake documents
	router.GET("/clients/:id/assets", assetHandler.Get)
	router.PUT("/clients/:id/assets", assetHandler.Put)
	router.POST("/clients/:id/assets/import", assetHandler.Import)
	router.PUT("/clients/:id/heirs", planHandler.PutHeirs)
	router.GET("/clients/:id/fiduciary-pool", planHandler.GetFiduciaryPool)
	router.PUT("/clients/:id/estate-plan", planHandler.PutEstatePlan)

	// Results
	router.GET("/clients/:id/validation", planHandler.GetValidation)
	router.GET("/clients/:id/scenarios/:kind", scenarioHandler.Get)
	router.POST("/scenarios/preview", scenarioHandler.Preview)
	router.POST("/validation/preview", planHandler.PreviewValidation)

	// User routes
	router.GET("/users/:user_id/clients", userHandler.ListClients)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
