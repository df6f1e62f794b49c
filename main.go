package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"demopay-svc/config"
	"demopay-svc/handlers"
	"demopay-svc/middleware"
	"demopay-svc/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	// Initialize OpenTelemetry
	shutdown, err := middleware.InitTracing("demopay-service", cfg.JaegerEndpoint)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer shutdown()

	// In-memory stores; everything is lost on restart
	users := store.NewUserStore()
	payments := store.NewPaymentStore()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	// Health check endpoint
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	router.GET("/metrics", middleware.PrometheusHandler())

	// Auth endpoints
	authHandler := handlers.NewAuthHandler(users, logger)
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Admin endpoints (no auth by design, demo only)
	adminHandler := handlers.NewAdminHandler(users, logger)
	router.GET("/admin", adminHandler.ListUsers)
	router.DELETE("/admin/:id", adminHandler.DeleteUser)

	// Payment endpoints
	paymentHandler := handlers.NewPaymentHandler(payments, logger)
	api := router.Group("/api")
	{
		api.POST("/create-payment", paymentHandler.CreatePayment)
		api.POST("/confirm-payment", paymentHandler.ConfirmPayment)
		api.GET("/payments", paymentHandler.ListPayments)
		api.GET("/payment/:orderId", paymentHandler.GetPayment)
		api.GET("/receipt/:orderId", paymentHandler.DownloadReceipt)
	}

	// Static frontend: login page at /, other unmatched GETs fall
	// through to the static directory
	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.StaticDir, "login.html"))
	})
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File(filepath.Join(cfg.StaticDir, filepath.Clean(c.Request.URL.Path)))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// Start server
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Demo Payment Service started", zap.String("addr", cfg.Addr()))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
