package middleware

import (
	"errors"
	"strings"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/domain"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/handler"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware requires "Authorization: Bearer <token>" with a live local
// session and stores the user id and token in the request locals.
func (m *Middleware) AuthMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return response.NewFailed(domain.AUTH_UNAUTHENTICATED, fiber.NewError(fiber.StatusUnauthorized, "missing bearer token"), m.Log).Send(ctx)
		}

		userID, err := m.Auth.Authenticate(ctx.UserContext(), token)
		if errors.Is(err, usecase.ErrUnauthorized) {
			if m.Log != nil {
				m.Log.WithError(err).Debug("authentication failed")
			}
			return response.NewFailed(domain.AUTH_UNAUTHENTICATED, fiber.NewError(fiber.StatusUnauthorized, err.Error()), m.Log).Send(ctx)
		}
		if err != nil {
			return response.NewFailed(domain.AUTH_SESSION_LOOKUP_FAILED, err, m.Log).Send(ctx)
		}

		ctx.Locals(handler.LocalUserID, userID)
		ctx.Locals(handler.LocalToken, token)
		return ctx.Next()
	}
}
