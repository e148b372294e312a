// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"carouselai/internal/ai"
	"carouselai/internal/cache"
	"carouselai/internal/carousel"
	"carouselai/internal/config"
	"carouselai/internal/database"
	"carouselai/internal/handlers"
	"carouselai/internal/router"
	"carouselai/internal/storage"
	"carouselai/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Valkey is optional; without it project reads go straight to Postgres.
	var valkeyClient *redis.Client
	if cfg.ValkeyHost != "" {
		valkeyClient, err = cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, project cache disabled", "error", err)
		} else {
			defer valkeyClient.Close()
		}
	}
	projectCache := cache.NewProjectCache(valkeyClient, cache.DefaultProjectTTL)

	media, mediaDir, err := openMedia(cfg)
	if err != nil {
		return err
	}

	aiRegistry := ai.NewRegistry(ctx, cfg.AIProvider, cfg.ProviderConfigs())
	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
		"image_generation", aiRegistry.SupportsImageGeneration(),
	)

	pipeline := carousel.NewPipeline(aiRegistry, carousel.Options{
		Temperature: float32(cfg.DeckTemperature),
		MaxTokens:   cfg.DeckMaxTokens,
	})

	api := handlers.NewAPI(
		store.NewProjectStore(db),
		store.NewSlideStore(db),
		aiRegistry,
		pipeline,
		media,
		projectCache,
	)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(api, router.Options{
			MediaDir: mediaDir,
		}),
		ReadTimeout: 30 * time.Second,
		// Carousel generation waits on the text model and then one image
		// call per slide.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// openMedia returns the S3 backend when an endpoint is configured, and the
// local file store otherwise. mediaDir is non-empty only for the latter.
func openMedia(cfg *config.Config) (media storage.Backend, mediaDir string, err error) {
	if cfg.S3Endpoint != "" {
		s3, err := storage.NewS3(cfg.S3())
		if err != nil {
			return nil, "", fmt.Errorf("init s3 storage: %w", err)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		return s3, "", nil
	}

	fs, err := storage.NewFileStore(cfg.MediaRoot, cfg.MediaURL)
	if err != nil {
		return nil, "", fmt.Errorf("init media directory: %w", err)
	}
	slog.Info("storing media on disk", "path", fs.BasePath())
	return fs, fs.BasePath(), nil
}
