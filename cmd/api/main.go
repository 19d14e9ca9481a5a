package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"pmportal/internship-matcher/internal/config"
	"pmportal/internship-matcher/internal/handlers"
	"pmportal/internship-matcher/internal/logger"
	"pmportal/internship-matcher/internal/repositories"
	"pmportal/internship-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	zlog.Info("database connected and migrated")

	// Initialize repositories
	studentRepo := repositories.NewStudentRepository(db)
	internshipRepo := repositories.NewInternshipRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	engine := services.NewMatchingEngine(studentRepo, internshipRepo, matchRepo, zlog)
	applicationService := services.NewApplicationService(applicationRepo, internshipRepo, studentRepo, zlog)

	// Initialize and start the background refresh worker
	worker := services.NewWorker(
		engine,
		studentRepo,
		cfg.Worker.Concurrency,
		cfg.Worker.QueueSize,
		cfg.Worker.RefreshInterval,
		zlog,
	)
	worker.Start(context.Background())

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(engine, matchRepo)
	applicationHandler := handlers.NewApplicationHandler(applicationService, applicationRepo)
	internshipHandler := handlers.NewInternshipHandler(internshipRepo)
	studentHandler := handlers.NewStudentHandler(studentRepo, worker)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Internship Matching API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/students", studentHandler.HandleCreate)
	api.Get("/students/:id/profile-completeness", studentHandler.HandleProfileCompleteness)
	api.Post("/students/:id/matches/generate", matchHandler.HandleGenerateForStudent)
	api.Get("/students/:id/matches", matchHandler.HandleListForStudent)
	api.Get("/students/:id/applications", applicationHandler.HandleListByStudent)

	api.Post("/internships", internshipHandler.HandleCreate)
	api.Get("/internships", internshipHandler.HandleListActive)
	api.Get("/internships/:id/applications", applicationHandler.HandleListByInternship)

	api.Post("/matches/generate-all", matchHandler.HandleGenerateAll)

	api.Post("/applications", applicationHandler.HandleApply)
	api.Patch("/applications/:id/status", applicationHandler.HandleUpdateStatus)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
