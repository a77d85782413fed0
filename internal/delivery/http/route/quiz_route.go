package route

import (
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoute(api fiber.Router, handler handler.QuizHandler) {
	router := api.Group("/quiz/sessions")
	{
		router.Post("/", handler.Start)
		router.Get("/:session_id", handler.Get)
		router.Post("/:session_id/answer", handler.Answer)
		router.Post("/:session_id/retry", handler.Retry)
		router.Post("/:session_id/next", handler.Next)
		router.Post("/:session_id/explain", handler.Explain)
		router.Get("/:session_id/explain/history", handler.TutorHistory)
	}
}
