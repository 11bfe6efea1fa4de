package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"advibes_site/config"
	"advibes_site/content"
	"advibes_site/db"
	"advibes_site/handlers"
	"advibes_site/metrics"
	"advibes_site/middleware"
	"advibes_site/models"
	"advibes_site/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New("advibes")

	// Rate-limit records live in the database; without one the limiter
	// keeps them in memory.
	var store services.KeyValueStore
	if err := db.Initialize(cfg.DBPath, cfg.TursoDatabaseURL, cfg.TursoAuthToken, cfg.Environment); err != nil {
		log.Printf("[WARNING] Failed to initialize database: %v. Rate limits will be kept in memory.", err)
		store = services.NewMemoryStore()
	} else {
		defer db.Close()
		if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		store = services.NewGormStore(db.DB)
	}

	services.InitializeStorage(cfg)
	middleware.InitAssetVersions("static")

	limiter := services.NewRateLimiter(store, services.SystemClock, m)
	go limiter.Run(ctx, 10*time.Minute)
	monitor := services.NewAbuseMonitor(services.SystemClock)
	go monitor.Run(ctx, time.Hour)
	services.Contact = services.NewContactService(cfg, services.NewRelay(cfg), limiter, services.SystemClock, m).WithMonitor(monitor)

	handlers.Spotlight = services.NewRotator(content.Testimonials, cfg.CarouselInterval)
	go handlers.Spotlight.Run(ctx)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(middleware.CSPNonce(cfg.R2PublicURL))
	e.Use(middleware.CSRF(cfg.IsProduction()))

	// Make config and metrics available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			c.Set("metrics", m)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	handlers.RegisterRoutes(e,
		middleware.PublicFormRateLimiter(ctx, m).Middleware(),
		middleware.FieldValidationRateLimiter(ctx, m).Middleware(),
	)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
