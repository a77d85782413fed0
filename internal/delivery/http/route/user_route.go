package route

import (
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupUserRoute(api fiber.Router, handler handler.UserHandler) {
	router := api.Group("/users/me")
	{
		router.Get("/", handler.Me)
		router.Put("/preferences", handler.UpdatePreferences)
		router.Post("/hearts/use", handler.UseHeart)
		router.Post("/hearts/add", handler.AddHeart)
		router.Post("/streak", handler.IncrementStreak)
		router.Get("/achievements", handler.Achievements)
		router.Get("/dashboard", handler.Dashboard)
	}

	api.Get("/leaderboard", handler.Leaderboard)
}
