package route

import (
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/middleware"
	"github.com/evandrarf/dsadojo-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api              *fiber.App
	Middleware       *middleware.Middleware
	AuthHandler      handler.AuthHandler
	CatalogHandler   handler.CatalogHandler
	QuizHandler      handler.QuizHandler
	UserHandler      handler.UserHandler
	ChallengeHandler handler.ChallengeHandler
	DisableLogger    bool
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	if !c.DisableLogger {
		c.Api.Use(logger.New(logger.Config{
			Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
		}))
	}
	c.Api.Use(c.Middleware.CorsMiddleware())

	c.Api.Get("/health", func(ctx *fiber.Ctx) error {
		return response.NewSuccess("OK", fiber.Map{"status": "up"}, nil).Send(ctx)
	})

	SetupAuthRoute(c.Api, c.AuthHandler, c.Middleware)

	api := c.Api.Group("/api", c.Middleware.AuthMiddleware())
	SetupCatalogRoute(api, c.CatalogHandler)
	SetupQuizRoute(api, c.QuizHandler)
	SetupUserRoute(api, c.UserHandler)
	SetupChallengeRoute(api, c.ChallengeHandler)
}
