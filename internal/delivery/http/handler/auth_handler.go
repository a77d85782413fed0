package handler

import (
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/domain"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/pkg/response"
	"github.com/evandrarf/dsadojo-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	AuthHandler interface {
		SignIn(ctx *fiber.Ctx) error
		SignUp(ctx *fiber.Ctx) error
		Logout(ctx *fiber.Ctx) error
	}

	authHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AuthUsecase
	}
)

func NewAuthHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AuthUsecase) AuthHandler {
	return &authHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /auth/signin
func (h *authHandler) SignIn(ctx *fiber.Ctx) error {
	var req entity.SignInRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_SIGNIN_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.SignIn(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, domain.AUTH_SIGNIN_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.AUTH_SIGNIN_SUCCESS, res, nil).Send(ctx)
}

// POST /auth/signup
func (h *authHandler) SignUp(ctx *fiber.Ctx) error {
	var req entity.SignUpRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_SIGNUP_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.SignUp(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, domain.AUTH_SIGNUP_FAILED, err, h.logger)
	}

	return response.NewCreated(domain.AUTH_SIGNUP_SUCCESS, res).Send(ctx)
}

// POST /auth/logout
func (h *authHandler) Logout(ctx *fiber.Ctx) error {
	token, _ := ctx.Locals(LocalToken).(string)
	if err := h.usecase.Logout(ctx.UserContext(), token); err != nil {
		return fail(ctx, domain.AUTH_LOGOUT_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.AUTH_LOGOUT_SUCCESS, nil, nil).Send(ctx)
}
