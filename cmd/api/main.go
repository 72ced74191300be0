package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outlet-platform/stock-service/internal/api/handlers"
	"github.com/outlet-platform/stock-service/internal/application"
	"github.com/outlet-platform/stock-service/internal/config"
	"github.com/outlet-platform/stock-service/internal/domain"
	mongoRepo "github.com/outlet-platform/stock-service/internal/infrastructure/mongodb"
	"github.com/outlet-platform/stock-service/internal/logging"
	"github.com/outlet-platform/stock-service/internal/metrics"
)

const serviceName = "stock-service"

func main() {
	cfg := config.Load()

	logger := logging.New(&logging.Config{
		Level:       logging.LogLevel(cfg.LogLevel),
		ServiceName: serviceName,
		Environment: cfg.Environment,
	})
	logger.SetDefault()

	logger.Info("Starting stock service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMinPoolSize(10).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		logger.WithError(err).Error("Failed to ping MongoDB")
		os.Exit(1)
	}
	logger.Info("Connected to MongoDB", "database", cfg.MongoDB)

	db := client.Database(cfg.MongoDB)

	m := metrics.New("stock_service")

	productRepo := mongoRepo.NewProductRepository(db)
	inventoryRepo := mongoRepo.NewInventoryRepository(db)
	batchRepo := mongoRepo.NewStockBatchRepository(db)
	billRepo := mongoRepo.NewBillRepository(db)
	userRepo := mongoRepo.NewUserRepository(db)

	notifier := application.NewChangeNotifier(logger)
	notifier.Subscribe(application.NewStockAlertObserver(logger))
	notifier.Subscribe(application.NewMetricsObserver(m))

	policy := domainPolicy()

	saleService := application.NewSaleService(
		productRepo, inventoryRepo, batchRepo, billRepo, policy, notifier, logger, m)
	stockService := application.NewStockService(
		productRepo, inventoryRepo, batchRepo, policy, notifier, logger, m)
	userService := application.NewUserService(userRepo, logger)

	saleHandlers := handlers.NewSaleHandlers(saleService, logger)
	stockHandlers := handlers.NewStockHandlers(stockService, logger)
	userHandlers := handlers.NewUserHandlers(userService, logger)

	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(httpMetrics(m))

	router.GET("/health", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")
	saleHandlers.RegisterRoutes(v1)
	stockHandlers.RegisterRoutes(v1)
	userHandlers.RegisterRoutes(v1)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("HTTP server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Stopped")
}

// domainPolicy picks the batch-selection algorithm. FIFO is the default;
// BATCH_POLICY=earliest-expiry draws from the soonest-expiring lot first.
func domainPolicy() domain.BatchSelectionPolicy {
	if os.Getenv("BATCH_POLICY") == "earliest-expiry" {
		return domain.NewEarliestExpiryBatchPolicy()
	}
	return domain.NewFIFOBatchPolicy()
}

// requestLogger returns a Gin middleware for logging requests
func requestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"clientIP", c.ClientIP(),
		)
	}
}

// httpMetrics returns a Gin middleware recording request counts and latency
func httpMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
