package main

import (
	"github.com/spf13/cobra"

	"github.com/fekuna/omnipos-catalog-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the catalog schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		log := newLogger(cfg)
		defer log.Sync()

		db, err := openDB(cfg, log)
		if err != nil {
			return err
		}

		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}
		if direction == "down" {
			err = migrations.RunMigrationsDown(db.DB)
		} else {
			err = migrations.RunMigrationsUp(db.DB)
		}
		if err != nil {
			return err
		}
		log.Info("Migrations applied")
		return nil
	},
}
