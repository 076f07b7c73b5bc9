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

	"github.com/gin-gonic/gin"

	"github.com/okgaadi/fleet-api/internal/di"
	"github.com/okgaadi/fleet-api/internal/domain"
	"github.com/okgaadi/fleet-api/internal/middleware"
	"github.com/okgaadi/fleet-api/pkg/config"
	"github.com/okgaadi/fleet-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Fleet Telemetry API...")

	ctx := context.Background()

	// Build dependency injection container; this probes the durable store and
	// falls back to the seeded in-memory store if it is unreachable.
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Failed to build container: %v", err))
	}

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Health check endpoints
	router.GET("/", container.HealthHandler.Root)
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			// Public endpoints
			auth.POST("/register", container.AuthHandler.Register)
			auth.POST("/login", container.AuthHandler.Login)
			auth.POST("/login-json", container.AuthHandler.LoginJSON)

			// Protected endpoints
			protected := auth.Group("")
			protected.Use(middleware.Auth(container.AuthService))
			{
				protected.GET("/me", container.AuthHandler.Me)
			}
		}

		vehicles := api.Group("/vehicles")
		vehicles.Use(middleware.Auth(container.AuthService))
		{
			vehicles.GET("", container.VehicleHandler.List)
			vehicles.GET("/:id", container.VehicleHandler.Get)
			vehicles.POST("", middleware.RequireRole(domain.RoleAdmin), container.VehicleHandler.Create)
			vehicles.PUT("/:id", container.VehicleHandler.Update)
			vehicles.DELETE("/:id", container.VehicleHandler.Delete)
		}

		trips := api.Group("/trips")
		trips.Use(middleware.Auth(container.AuthService))
		{
			trips.GET("", container.TripHandler.List)
			trips.POST("", container.TripHandler.Create)
		}

		alerts := api.Group("/alerts")
		alerts.Use(middleware.Auth(container.AuthService))
		{
			alerts.GET("", container.AlertHandler.List)
			alerts.POST("", container.AlertHandler.Create)
			alerts.PUT("/:id/read", container.AlertHandler.MarkRead)
			alerts.DELETE("/:id", container.AlertHandler.Delete)
		}
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info("Fleet Telemetry API listening on " + addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}
	if err := container.Close(shutdownCtx); err != nil {
		appLog.Warn(fmt.Sprintf("Store disconnect failed: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

// corsMiddleware allows all origins, as the demo frontend expects.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
