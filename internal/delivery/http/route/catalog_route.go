package route

import (
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoute(api fiber.Router, handler handler.CatalogHandler) {
	router := api.Group("/categories")
	{
		router.Get("/", handler.Categories)
		router.Get("/:category_id", handler.Category)
		router.Get("/:category_id/lessons/:lesson_id", handler.Lesson)
	}
}
