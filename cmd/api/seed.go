package main

import (
	"fmt"

	"github.com/evandrarf/dsadojo-be/database"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the question bank and the demo leaderboard users",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig, log := setup(cmd)
		db := database.New(viperConfig)

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		bank, err := lesson.DefaultBank()
		if err != nil {
			return fmt.Errorf("failed to load question bank: %w", err)
		}
		if err := database.SeedQuestionBank(db, bank, log); err != nil {
			return fmt.Errorf("failed to seed question bank: %w", err)
		}

		if skip, _ := cmd.Flags().GetBool("skip-demo-users"); !skip {
			if err := database.SeedDemoUsers(db, log); err != nil {
				return fmt.Errorf("failed to seed demo users: %w", err)
			}
		}

		log.Info("Seeders completed successfully")
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("skip-demo-users", false, "Only seed the question bank")
}
