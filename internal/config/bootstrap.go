package config

import (
	"github.com/evandrarf/dsadojo-be/internal/challenge"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/middleware"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/route"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/pkg/identity"
	"github.com/evandrarf/dsadojo-be/internal/pkg/llm"
	"github.com/evandrarf/dsadojo-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api        *fiber.App
	Config     *viper.Viper
	DB         *gorm.DB
	Log        *logrus.Logger
	Validator  *validate.Validator
	Catalog    *lesson.Catalog
	Challenges *challenge.Catalog
	Identity   identity.Client
	Tutor      llm.Provider
	Publisher  events.Publisher
}

func Bootstrap(config *BootstrapConfig) {
	userRepo := repository.NewUserRepository(config.DB)
	progressRepo := repository.NewProgressRepository(config.DB)
	quizSessionRepo := repository.NewQuizSessionRepository(config.DB)

	userUsecase := usecase.NewUserUsecase(usecase.UserConfig{
		DB:        config.DB,
		Users:     userRepo,
		Progress:  progressRepo,
		Publisher: config.Publisher,
		Log:       config.Log,
	})
	authUsecase := usecase.NewAuthUsecase(usecase.AuthConfig{
		DB:         config.DB,
		Identity:   config.Identity,
		Users:      userRepo,
		UserCase:   userUsecase,
		SessionTTL: config.Config.GetDuration("identity.session_ttl"),
		Log:        config.Log,
	})
	catalogUsecase := usecase.NewCatalogUsecase(usecase.CatalogConfig{
		DB:       config.DB,
		Catalog:  config.Catalog,
		Users:    userRepo,
		Progress: progressRepo,
		Log:      config.Log,
	})
	quizUsecase := usecase.NewQuizUsecase(usecase.QuizConfig{
		DB:             config.DB,
		Catalog:        config.Catalog,
		Sessions:       quizSessionRepo,
		Users:          userRepo,
		Progress:       progressRepo,
		Tutor:          config.Tutor,
		ExplainTimeout: config.Config.GetDuration("llm.explain_timeout"),
		Publisher:      config.Publisher,
		Log:            config.Log,
	})
	leaderboardUsecase := usecase.NewLeaderboardUsecase(usecase.LeaderboardConfig{
		DB:    config.DB,
		Users: userRepo,
	})
	challengeUsecase := usecase.NewChallengeUsecase(usecase.ChallengeConfig{
		DB:        config.DB,
		Catalog:   config.Challenges,
		Users:     userRepo,
		Progress:  progressRepo,
		Publisher: config.Publisher,
		Log:       config.Log,
	})

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
		Auth:   authUsecase,
	})

	route.Setup(&route.RouteConfig{
		Api:              config.Api,
		Middleware:       mid,
		AuthHandler:      handler.NewAuthHandler(config.Validator, config.Log, authUsecase),
		CatalogHandler:   handler.NewCatalogHandler(config.Log, catalogUsecase),
		QuizHandler:      handler.NewQuizHandler(config.Validator, config.Log, quizUsecase),
		UserHandler:      handler.NewUserHandler(config.Validator, config.Log, userUsecase, leaderboardUsecase),
		ChallengeHandler: handler.NewChallengeHandler(config.Log, challengeUsecase),
	})
}
