package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/clusterconfig/internal/backup"
	"github.com/alfredjeanlab/clusterconfig/internal/config"
	"github.com/alfredjeanlab/clusterconfig/internal/events"
	"github.com/alfredjeanlab/clusterconfig/internal/pricing"
	"github.com/alfredjeanlab/clusterconfig/internal/server"
	"github.com/alfredjeanlab/clusterconfig/internal/store"
	"github.com/alfredjeanlab/clusterconfig/internal/store/postgres"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the clusterconfig HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		// Load configuration.
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Connect to Postgres.
		st, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return err
		}

		ctx := context.Background()

		// Seed the pricing catalog when empty.
		inserted, err := store.EnsureDefaultPricing(ctx, st)
		if err != nil {
			st.Close()
			return err
		}
		if inserted > 0 {
			logger.Info("pricing catalog seeded", "rows", inserted)
		}

		// Load the pricing cache. An empty or unreachable catalog is fatal:
		// the process must not serve pricing traffic without it.
		cache := pricing.NewCache(st)
		if err := cache.Load(ctx); err != nil {
			st.Close()
			return err
		}

		// Create event publisher.
		var publisher events.Publisher
		if cfg.NATSURL != "" {
			pub, err := events.NewNATSPublisher(cfg.NATSURL)
			if err != nil {
				st.Close()
				return err
			}
			publisher = pub
			logger.Info("events enabled", "nats_url", cfg.NATSURL)
		} else {
			publisher = &events.NoopPublisher{}
			logger.Info("events disabled (CLUSTERCONFIG_NATS_URL not set)")
		}

		tiers, _ := cache.NodeCounts()
		if err := publisher.Publish(ctx, events.TopicPricingLoaded, events.PricingLoaded{Tiers: tiers}); err != nil {
			logger.Warn("failed to publish pricing loaded event", "err", err)
		}

		// Create server and start the HTTP listener.
		configServer := server.NewConfigServer(st, cache, publisher)
		httpServer := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: configServer.NewHTTPHandler(cfg.AuthToken),
		}

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server error", "err", err)
			}
		}()

		// Start the backup scheduler if a destination is configured.
		var scheduler *backup.Scheduler
		if cfg.BackupInterval > 0 && cfg.BackupS3Bucket != "" {
			s3Dest, err := backup.NewS3Destination(
				ctx,
				cfg.BackupS3Bucket,
				cfg.BackupS3Key,
				cfg.BackupS3Region,
				cfg.BackupS3Endpoint,
			)
			if err != nil {
				logger.Error("failed to create S3 backup destination", "err", err)
			} else {
				scheduler = backup.NewScheduler(st, []backup.Destination{s3Dest}, cfg.BackupInterval, logger)
				scheduler.Start()
				logger.Info("backup scheduler started", "bucket", cfg.BackupS3Bucket, "interval", cfg.BackupInterval)
			}
		}

		logger.Info("clusterconfig server started", "http_addr", cfg.HTTPAddr, "pricing_tiers", len(tiers))

		// Wait for SIGINT or SIGTERM.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)

		// Graceful shutdown.
		if scheduler != nil {
			scheduler.Stop()
			logger.Info("backup scheduler stopped")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "err", err)
		}
		logger.Info("HTTP server stopped")

		if err := publisher.Close(); err != nil {
			logger.Error("error closing publisher", "err", err)
		}
		if err := st.Close(); err != nil {
			logger.Error("error closing store", "err", err)
		}

		logger.Info("shutdown complete")
		return nil
	},
}
