package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"supplytrack/internal/config"
	"supplytrack/internal/handlers"
	"supplytrack/internal/jobs"
	"supplytrack/internal/jobs/background"
	"supplytrack/internal/repositories"
	"supplytrack/internal/services"
	"supplytrack/pkg/database"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Database connection pool
	pool, err := database.NewPool(cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create repositories
	supplierRepo := repositories.NewSupplierRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	reportRepo := repositories.NewReportRepository(pool)

	// Create services
	supplierSvc := services.NewSupplierService(supplierRepo)
	inventorySvc := services.NewInventoryService(inventoryRepo, supplierRepo)
	reportSvc := services.NewReportService(reportRepo)

	// Create handlers
	supplierHandlers := handlers.NewSupplierHandlers(supplierSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc, reportSvc)

	// Background jobs (disabled unless an interval is configured)
	var scheduler *background.JobScheduler
	if cfg.LowStockInterval > 0 {
		alertSvc := jobs.NewInventoryAlertService(inventoryRepo)
		scheduler, err = background.NewJobScheduler(alertSvc)
		if err != nil {
			log.Fatalf("Failed to create job scheduler: %v", err)
		}
		if err := scheduler.RegisterLowStockCheck(cfg.LowStockInterval, cfg.LowStockThreshold); err != nil {
			log.Fatalf("Failed to register low stock check: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.NewErrorHandler(cfg.IsDevelopment())

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.ContextTimeout(cfg.RequestTimeout))

	// Routes
	e.GET("/", handlers.Index)
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")
	api.POST("/supplier", supplierHandlers.CreateSupplier)
	api.GET("/suppliers", supplierHandlers.ListSuppliers)
	api.POST("/inventory", inventoryHandlers.CreateInventory)
	api.GET("/inventory", inventoryHandlers.ListInventory)
	api.GET("/inventory/grouped-by-supplier", inventoryHandlers.GroupedBySupplier)

	// Start server
	log.Printf("Supplytrack server v%s starting on port %s (%s)", version, cfg.Port, cfg.Env)
	go func() {
		if err := e.Start(fmt.Sprintf(":%s", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
