package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	appLogger "github.com/FACorreiaa/local-wander/app/logger"
	"github.com/FACorreiaa/local-wander/app/observability/metrics"
	"github.com/FACorreiaa/local-wander/app/tracer"
	"github.com/FACorreiaa/local-wander/config"
	"github.com/FACorreiaa/local-wander/internal/api/favorites"
	generativeAI "github.com/FACorreiaa/local-wander/internal/api/generative_ai"
	"github.com/FACorreiaa/local-wander/internal/api/itinerary"
	api "github.com/FACorreiaa/local-wander/internal/router"
	"github.com/FACorreiaa/local-wander/internal/store"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger(cfg.Mode)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port, logger); err != nil {
		logger.Error("Failed to initialize tracing and metrics", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	// --- Dependency Injection ---
	// The store lives for the process lifetime and is passed by reference;
	// nothing survives a restart.
	memStore := store.New()

	var generator itinerary.Generator
	if apiKey := config.GeminiAPIKey(); apiKey != "" {
		aiClient, err := generativeAI.NewAIClient(ctx, apiKey, cfg.Gemini.Model)
		if err != nil {
			logger.Error("Failed to create AI client", slog.Any("error", err))
			os.Exit(1)
		}
		generator = aiClient
	} else {
		// The server still starts; the generate endpoint reports the missing
		// credential per request without ever touching the provider.
		logger.Warn("No Gemini API key configured; generation requests will fail with API_KEY_MISSING")
	}

	itineraryService := itinerary.NewService(generator, memStore, cfg.Gemini.CacheTTL, cfg.Gemini.Temperature, logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, config.GeminiAPIKey, logger)

	favoritesService := favorites.NewService(memStore, logger)
	favoritesHandler := favorites.NewHandler(favoritesService, logger)

	// --- Router Setup ---
	mainRouter := api.SetupRouter(&api.Config{
		ItineraryHandler: itineraryHandler,
		FavoritesHandler: favoritesHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger(mode string) *slog.Logger {
	if mode == "development" || mode == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		return slog.New(tint.NewHandler(os.Stdout, tintOpts))
	}

	// JSON logs for production or other environments
	jsonOpts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
}
