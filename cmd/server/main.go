package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magazine-editorial-api/internal/api"
	"github.com/magazine-editorial-api/internal/config"
	"github.com/magazine-editorial-api/internal/database"
	"github.com/magazine-editorial-api/internal/media"
	"github.com/magazine-editorial-api/internal/repository"
	"github.com/magazine-editorial-api/internal/retry"
	"github.com/magazine-editorial-api/internal/service"
	"github.com/magazine-editorial-api/internal/social"
	"github.com/magazine-editorial-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting magazine editorial API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	retryCfg := retry.Config{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.Retry.BaseDelay,
		MaxDelay:   cfg.Retry.MaxDelay,
	}

	// Initialize database; connecting retries through the same backoff
	// primitive submissions use
	db, err := retry.DoValue(context.Background(), retryCfg, func(ctx context.Context) (*database.DB, error) {
		return database.New(&cfg.Database, log)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize social cross-poster and services
	poster := social.NewPoster(&cfg.Social, log)
	services := service.NewServices(repos, poster, cfg, log)

	// Media storage is optional; uploads 503 without it
	var storage media.Storage
	if cfg.Media.SupabaseURL != "" && cfg.Media.SupabaseKey != "" {
		storage, err = media.NewStorage(&cfg.Media, retryCfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize media storage")
		}
	} else {
		log.Warn().Msg("Media storage not configured, uploads disabled")
	}

	// Initialize router
	router := api.NewRouter(services, storage, repos, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Let detached cross-posts finish before the process exits
	services.Article.WaitForCrossPosts()

	log.Info().Msg("Server exited gracefully")
}
