package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/amikaross/rails-engine/docs"
	"github.com/amikaross/rails-engine/internal/caching"
	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/config"
	"github.com/amikaross/rails-engine/internal/handlers"
	"github.com/amikaross/rails-engine/internal/jobs/background"
	"github.com/amikaross/rails-engine/internal/logger"
	"github.com/amikaross/rails-engine/internal/metrics"
	"github.com/amikaross/rails-engine/internal/middleware"
	"github.com/amikaross/rails-engine/internal/repositories"
	"github.com/amikaross/rails-engine/internal/services"
	"github.com/amikaross/rails-engine/pkg/database"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 30 * time.Second
)

// @title        Rails Engine API
// @version      1.0
// @description  Merchants, items and invoices with name and price search.
// @BasePath     /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.GetLogger()
	log.Info("Configuration loaded", cfg.LogFields()...)

	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.ClosePool(pool)

	// Create repositories
	itemRepo := repositories.NewItemRepo(pool)
	merchantRepo := repositories.NewMerchantRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	invoiceItemRepo := repositories.NewInvoiceItemRepo(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Create services
	merchantSvc := services.NewMerchantService(merchantRepo, cacheSvc, cfg.Redis.TTL)
	itemSvc := services.NewItemService(pool, itemRepo, invoiceRepo, invoiceItemRepo, merchantSvc, cacheSvc, cfg.Redis.TTL)
	searchSvc := services.NewSearchService(itemRepo, merchantRepo)
	invoiceSvc := services.NewInvoiceService(pool, invoiceRepo, invoiceItemRepo, itemRepo, merchantSvc)

	scheduler, err := background.NewJobScheduler(background.SchedulerConfig{
		InvoiceSweepInterval: cfg.Jobs.InvoiceSweepInterval,
		CacheFlushInterval:   cfg.Jobs.CacheFlushInterval,
	}, invoiceSvc, cacheSvc)
	if err != nil {
		log.Fatal("Failed to create job scheduler", zap.Error(err))
	}

	// Create handlers
	itemHandlers := handlers.NewItemHandlers(itemSvc)
	merchantHandlers := handlers.NewMerchantHandlers(merchantSvc, itemSvc)
	searchHandlers := handlers.NewSearchHandlers(searchSvc)
	invoiceHandlers := handlers.NewInvoiceHandlers(invoiceSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, version)
	jobHandlers := handlers.NewJobHandlers(scheduler)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = common.HTTPErrorHandler

	// Global middleware
	httpMetrics := metrics.NewHTTPMetrics(cfg.ServiceName)
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())

	// Version middleware
	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	// Operational endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)
	e.GET("/health/jobs", jobHandlers.ListJobs)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	v1 := versionMiddleware.VersionRoute(e, "v1")
	handlers.RegisterAPIRoutes(v1, itemHandlers, merchantHandlers, searchHandlers, invoiceHandlers)

	scheduler.Start()

	go func() {
		log.Info("Starting server", zap.String("version", version), zap.Int("port", cfg.Server.Port))
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := scheduler.Stop(); err != nil {
		log.Error("Job scheduler did not stop cleanly", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
