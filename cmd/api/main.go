package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"exambook/internal/adapter"
	"exambook/internal/config"
	"exambook/internal/database"
	"exambook/internal/domain"
	"exambook/internal/export"
	"exambook/internal/handler"
	"exambook/internal/imagestore"
	"exambook/internal/logger"
	"exambook/internal/middleware"
	"exambook/internal/repository"
	"exambook/internal/service"
	"exambook/internal/storage"
	"exambook/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

// newStorage builds the storage backend selected by the configuration.
// The returned closer releases the underlying connection, if any.
func newStorage(cfg *config.Config) (domain.Storage, func(), error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		db, err := database.NewSQLXSQLiteDB(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return adapter.NewSQLiteStorageAdapter(db), func() { db.Close() }, nil
	case "redis":
		client, err := storage.NewRedisClient(cfg.Storage.Redis)
		if err != nil {
			return nil, nil, err
		}
		return adapter.NewRedisStorageAdapter(client), func() { client.Close() }, nil
	case "fs":
		s, err := adapter.NewFSStorageAdapter(cfg.Storage.FS.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to the configured storage backend
	store, closeStorage, err := newStorage(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer closeStorage()

	if err := store.Ping(context.Background()); err != nil {
		appLogger.Fatal("Storage ping failed", zap.Error(err))
	}
	appLogger.Info("Storage backend ready", zap.String("backend", cfg.Storage.Backend))

	// Wire the catalog on top of the storage port
	imageStore := imagestore.NewStore(store)
	exporter := export.NewExporter(store)
	examRepository := repository.NewExamRepository(store, imageStore, exporter)
	examService := service.NewExamService(examRepository, imageStore, exporter)
	examHandler := handler.NewExamHandler(examService, validation.NewValidator())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Exam routes
	apiGroup.Post("/exams", examHandler.CreateExam)
	apiGroup.Get("/exams", examHandler.GetExams)
	apiGroup.Get("/exams/:id", examHandler.GetExamByID)
	apiGroup.Get("/exams/:id/markdown", examHandler.GetExamMarkdown)

	// Exercise routes
	apiGroup.Post("/exams/:id/exercises", examHandler.CreateExercise)
	apiGroup.Get("/exams/:id/exercises", examHandler.GetExercisesByExamID)
	apiGroup.Get("/exercises/:id", examHandler.GetExerciseByID)

	// Image routes
	apiGroup.Get("/images/*", examHandler.GetImage)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
