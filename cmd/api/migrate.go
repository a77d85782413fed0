package main

import (
	"fmt"

	"github.com/evandrarf/dsadojo-be/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig, log := setup(cmd)

		if err := database.Migrate(database.New(viperConfig)); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations completed successfully")
		return nil
	},
}
