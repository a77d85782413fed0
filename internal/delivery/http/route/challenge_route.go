package route

import (
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupChallengeRoute(api fiber.Router, handler handler.ChallengeHandler) {
	router := api.Group("/challenges")
	{
		router.Get("/", handler.List)
		router.Get("/:id/open", handler.Open)
		router.Post("/:id/complete", handler.Complete)
	}
}
