package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load the static synonym/category table once at startup
	resolver, err := services.NewSynonymResolver()
	if err != nil {
		log.Fatalf("❌ Failed to load skills table: %v", err)
	}
	log.Println("✅ Skills table loaded successfully")

	// Initialize pipeline services
	normalizer := services.NewNormalizerService()
	extractor := services.NewExtractorService(cfg.Analysis.TopKeywords, cfg.Analysis.MinKeywords)
	matcher := services.NewMatcherService()
	scorer := services.NewScorerService()

	analyzer := services.NewAnalyzerService(normalizer, extractor, resolver, matcher, scorer)
	log.Println("✅ Analyzer service initialized")

	// Initialize decoders and handlers
	decoders := services.NewDecoderRegistry()
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, decoders, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Keyword Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
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

	// API endpoints
	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Keyword Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
