package main

import (
	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-service/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalog with the demo dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadConfig()
		log := newLogger(cfg)
		defer log.Sync()

		db, err := openDB(cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := seed.NewSeeder(db, log).Seed(cmd.Context(), seed.Demo()); err != nil {
			return err
		}
		log.Info("Database seeded successfully")
		return nil
	},
}
