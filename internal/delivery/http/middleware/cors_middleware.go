package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the origins listed in api.cors.origins (comma
// separated, "*" by default). Credentials are only allowed for an explicit
// origin list.
func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	maxAge := 0
	if m != nil && m.Config != nil {
		if v := strings.TrimSpace(m.Config.GetString("api.cors.origins")); v != "" {
			allowOrigins = v
		}
		maxAge = m.Config.GetInt("api.cors.max_age")
	}

	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Content-Length, Accept-Encoding",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowOrigins:     allowOrigins,
		AllowCredentials: allowOrigins != "*",
		ExposeHeaders:    "Content-Length, Content-Type, Location",
		MaxAge:           maxAge,
	})
}
