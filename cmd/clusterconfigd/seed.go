package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/clusterconfig/internal/config"
	"github.com/alfredjeanlab/clusterconfig/internal/store"
	"github.com/alfredjeanlab/clusterconfig/internal/store/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run migrations and seed the pricing catalog, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		st, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()

		inserted, err := store.EnsureDefaultPricing(context.Background(), st)
		if err != nil {
			return err
		}
		if inserted > 0 {
			logger.Info("pricing catalog seeded", "rows", inserted)
		} else {
			logger.Info("pricing catalog already populated")
		}
		return nil
	},
}
