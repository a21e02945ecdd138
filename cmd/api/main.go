// Package main is the entry point for the WayOut API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/wayout-app/backend/internal/catalog"
	"github.com/wayout-app/backend/internal/client"
	"github.com/wayout-app/backend/internal/config"
	"github.com/wayout-app/backend/internal/handler"
	"github.com/wayout-app/backend/internal/middleware"
	"github.com/wayout-app/backend/internal/repo"
	"github.com/wayout-app/backend/internal/service"
	"github.com/wayout-app/backend/migrations"
	"github.com/wayout-app/backend/spec"
)

// maxRequestBody caps request bodies globally. Avatar uploads are the
// largest legitimate payload; the avatar handler applies its own tighter
// limit on the file part.
const maxRequestBody = 10 << 20 // 10 MiB

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a development convenience; missing file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Catalog ----------------------------------------------------------
	cat, err := catalog.Load()
	if err != nil {
		slog.Error("failed to load destination catalog", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	// Provider-backed services are wired only when their credentials are
	// configured; the handlers answer 503 for the unwired ones.
	tripRepo := repo.NewTripRepo(pool)
	userRepo := repo.NewUserRepo(pool)
	profileRepo := repo.NewProfileRepo(pool)
	reviewRepo := repo.NewReviewRepo(pool)

	var planner handler.PlannerServicer
	if cfg.MistralAPIKey != "" {
		llm := client.NewLLM(cfg.MistralAPIKey, cfg.MistralBaseURL, cfg.MistralModel)
		planner = service.NewPlannerService(llm, tripRepo)
	} else {
		slog.Warn("MISTRAL_API_KEY not set; itinerary generation disabled")
	}

	var assistant handler.AssistantServicer
	if cfg.CohereAPIKey != "" {
		chat := client.NewCohere(cfg.CohereAPIKey, cfg.CohereBaseURL, cfg.CohereModel)
		assistant = service.NewAssistantService(chat)
	} else {
		slog.Warn("COHERE_API_KEY not set; chat assistant disabled")
	}

	var photos handler.PhotoServicer
	if cfg.UnsplashAccessKey != "" {
		photos = service.NewPhotoService(client.NewUnsplash(cfg.UnsplashAccessKey, ""))
	} else {
		slog.Warn("UNSPLASH_ACCESS_KEY not set; destination photos disabled")
	}

	var uploader service.Uploader
	if cfg.CloudinaryCloudName != "" && cfg.CloudinaryUploadPreset != "" {
		uploader = client.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset, "")
	} else {
		slog.Warn("Cloudinary not configured; avatar uploads disabled")
	}

	currency := service.NewCurrencyService(client.NewFrankfurter(cfg.FrankfurterBaseURL))
	auth := service.NewAuthService(userRepo, profileRepo)
	profiles := service.NewProfileService(profileRepo, uploader)
	reviews := service.NewReviewService(reviewRepo)

	srvHandler := handler.NewServer(cat, planner, assistant, currency, auth, profiles, reviews, photos, spec.OpenAPI)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))

	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // itinerary generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies any pending schema migrations embedded in the binary.
// goose needs database/sql rather than a pgx pool, so it gets its own
// short-lived connection.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("applied migration", "source", res.Source.Path)
	}
	return nil
}
