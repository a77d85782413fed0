package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evandrarf/dsadojo-be/database"
	"github.com/evandrarf/dsadojo-be/internal/challenge"
	"github.com/evandrarf/dsadojo-be/internal/config"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/pkg/identity"
	"github.com/evandrarf/dsadojo-be/internal/pkg/llm"
	"github.com/evandrarf/dsadojo-be/internal/pkg/validate"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	viperConfig, log := setup(cmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := database.New(viperConfig)
	validator := validate.NewValidator()
	api := config.NewAPI(viperConfig, log)

	if skip, _ := cmd.Flags().GetBool("skip-migrate"); !skip {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations completed successfully")
	}

	bank, err := lesson.DefaultBank()
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}
	catalog, err := usecase.LoadCatalog(db, repository.NewQuestionRepository(db), bank, log)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	challenges, err := challenge.Default()
	if err != nil {
		return fmt.Errorf("failed to load challenges: %w", err)
	}

	tutor, err := llm.New(ctx, viperConfig, log)
	if err != nil && !errors.Is(err, llm.ErrDisabled) {
		return fmt.Errorf("failed to create tutor: %w", err)
	}
	if tutor == nil {
		log.Warn("AI tutor disabled, explanations fall back to the question bank")
	}

	publisher, err := events.New(viperConfig, log)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}
	defer publisher.Close()

	config.Bootstrap(&config.BootstrapConfig{
		Config:     viperConfig,
		Log:        log,
		Api:        api,
		Validator:  validator,
		DB:         db,
		Catalog:    catalog,
		Challenges: challenges,
		Identity: identity.NewClient(identity.Config{
			BaseURL: viperConfig.GetString("identity.base_url"),
			APIKey:  viperConfig.GetString("identity.api_key"),
			Timeout: viperConfig.GetDuration("identity.timeout"),
			Log:     log,
		}),
		Tutor:     tutor,
		Publisher: publisher,
	})

	listenAddr := fmt.Sprintf(":%d", viperConfig.GetInt("api.port"))

	go func() {
		if err := api.Listen(listenAddr); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := api.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("API shutdown error: %v", err)
	}
	return nil
}
