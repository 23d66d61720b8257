package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"winestudy/internal/middleware"
	"winestudy/internal/repository"
	"winestudy/internal/service"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		slog.Info("Migration completed")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert static reference data (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = middleware.WithLogger(ctx, logger)

		resp, err := service.NewSeedService(db, repository.NewGormSeedRepository()).Seed(ctx)
		if err != nil {
			return err
		}
		logger.Info(resp.Message, "counts", resp.Counts)
		return nil
	},
}
