package main

import (
	"github.com/evandrarf/dsadojo-be/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "dsadojo",
	Short: "Gamified DSA learning backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Override log.level")
	rootCmd.PersistentFlags().Bool("skip-migrate", false, "Do not migrate the schema before serving")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(lessonsCmd)
}

// setup loads the configuration and the logger shared by every command.
func setup(cmd *cobra.Command) (*viper.Viper, *logrus.Logger) {
	viperConfig := config.NewViper()
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		viperConfig.Set("log.level", level)
	}
	return viperConfig, config.NewLogger(viperConfig)
}
