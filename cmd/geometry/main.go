package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"geometry/internal/common/config"
	"geometry/internal/common/middleware"
	"geometry/internal/geometry/handlers"
	"geometry/internal/geometry/program"
	"geometry/internal/geometry/render"
	"geometry/internal/geometry/repository"

	"github.com/gogpu/gg/text"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Geometry Service
// ============================================================

func main() {
	cfg := config.Load()
	if cfg.Environment == "development" {
		program.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), cfg.MigrationsPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	var font *text.FontSource
	if cfg.FontPath != "" {
		if font, err = render.LoadFont(cfg.FontPath); err != nil {
			log.Printf("PNG labels disabled: %v", err)
		}
	}

	evalHandler := handlers.NewEvalHandler(font, handlers.Limits{
		Width:     float64(cfg.RenderWidth),
		Height:    float64(cfg.RenderHeight),
		MaxFrames: cfg.MaxFrames,
	})
	programsHandler := handlers.NewProgramsHandler(repo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Geometry Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger(os.Stdout))
	app.Use(middleware.CORS(cfg.CORSOrigins))

	handlers.Routes(app, evalHandler, programsHandler, "docs/geometry.openapi.yaml")

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Geometry Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
