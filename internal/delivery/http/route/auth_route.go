package route

import (
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoute(api *fiber.App, handler handler.AuthHandler, m *middleware.Middleware) {
	router := api.Group("/auth")
	{
		router.Post("/signin", handler.SignIn)
		router.Post("/signup", handler.SignUp)
		router.Post("/logout", m.AuthMiddleware(), handler.Logout)
	}
}
