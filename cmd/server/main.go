package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/najimt9-dotcom/PortfolioNT/internal/api"
	"github.com/najimt9-dotcom/PortfolioNT/internal/completion"
	"github.com/najimt9-dotcom/PortfolioNT/internal/config"
	"github.com/najimt9-dotcom/PortfolioNT/internal/handlers"
	"github.com/najimt9-dotcom/PortfolioNT/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	if cfg.OpenAIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set; completion calls will fail and surface as 500s")
	}

	ctx := context.Background()

	// Durable transcript archive: SQLite when configured, in-memory otherwise
	var archive store.Archive
	if cfg.SQLitePath != "" {
		sqliteArchive, err := store.NewSQLiteArchive(ctx, cfg.SQLitePath)
		if err != nil {
			logger.Fatal().Err(err).Msg("sqlite archive open failed")
		}
		defer sqliteArchive.Close()
		archive = sqliteArchive
		logger.Info().Str("path", cfg.SQLitePath).Msg("transcript archive on SQLite")
	} else {
		archive = store.NewMemoryArchive()
		logger.Info().Msg("transcript archive in memory")
	}

	// Optional Redis cache of recent exchanges
	var cache *store.RedisArchive
	if cfg.RedisURL != "" {
		var err error
		cache, err = store.NewRedisArchive(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection failed")
		}
		defer cache.Close()
		logger.Info().Msg("connected to Redis")
	}

	// Completion provider
	provider := completion.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.Model, logger)

	// Create router
	h := handlers.NewHandler(provider, archive, cache, logger)
	router := api.NewRouter(logger, h)

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second, // provider calls can take a while
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("model", cfg.Model).
			Msg("starting portfolio assistant server")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	// Graceful shutdown with 30 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}
