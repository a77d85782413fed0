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
	UserHandler interface {
		Me(ctx *fiber.Ctx) error
		UpdatePreferences(ctx *fiber.Ctx) error
		UseHeart(ctx *fiber.Ctx) error
		AddHeart(ctx *fiber.Ctx) error
		IncrementStreak(ctx *fiber.Ctx) error
		Achievements(ctx *fiber.Ctx) error
		Dashboard(ctx *fiber.Ctx) error
		Leaderboard(ctx *fiber.Ctx) error
	}

	userHandler struct {
		validator   *validate.Validator
		logger      *logrus.Logger
		usecase     usecase.UserUsecase
		leaderboard usecase.LeaderboardUsecase
	}
)

func NewUserHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.UserUsecase, leaderboard usecase.LeaderboardUsecase) UserHandler {
	return &userHandler{
		validator:   validator,
		logger:      logger,
		usecase:     usecase,
		leaderboard: leaderboard,
	}
}

// GET /api/users/me
func (h *userHandler) Me(ctx *fiber.Ctx) error {
	profile, err := h.usecase.Me(ctx.UserContext(), userID(ctx))
	if err != nil {
		return fail(ctx, domain.USER_GET_PROFILE_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.USER_GET_PROFILE_SUCCESS, profile, nil).Send(ctx)
}

// PUT /api/users/me/preferences
func (h *userHandler) UpdatePreferences(ctx *fiber.Ctx) error {
	var req entity.UpdatePreferencesRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.USER_UPDATE_PREFERENCES_FAILED, err, h.logger).Send(ctx)
	}

	profile, err := h.usecase.UpdatePreferences(ctx.UserContext(), userID(ctx), req)
	if err != nil {
		return fail(ctx, domain.USER_UPDATE_PREFERENCES_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.USER_UPDATE_PREFERENCES_SUCCESS, profile, nil).Send(ctx)
}

// POST /api/users/me/hearts/use
func (h *userHandler) UseHeart(ctx *fiber.Ctx) error {
	profile, err := h.usecase.UseHeart(ctx.UserContext(), userID(ctx))
	if err != nil {
		return fail(ctx, domain.USER_USE_HEART_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.USER_USE_HEART_SUCCESS, profile, nil).Send(ctx)
}

// POST /api/users/me/hearts/add
func (h *userHandler) AddHeart(ctx *fiber.Ctx) error {
	profile, err := h.usecase.AddHeart(ctx.UserContext(), userID(ctx))
	if err != nil {
		return fail(ctx, domain.USER_ADD_HEART_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.USER_ADD_HEART_SUCCESS, profile, nil).Send(ctx)
}

// POST /api/users/me/streak
func (h *userHandler) IncrementStreak(ctx *fiber.Ctx) error {
	profile, err := h.usecase.IncrementStreak(ctx.UserContext(), userID(ctx))
	if err != nil {
		return fail(ctx, domain.USER_STREAK_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.USER_STREAK_SUCCESS, profile, nil).Send(ctx)
}

// GET /api/users/me/achievements
func (h *userHandler) Achievements(ctx *fiber.Ctx) error {
	res, err := h.usecase.Achievements(ctx.UserContext(), userID(ctx))
	if err != nil {
		return fail(ctx, domain.USER_ACHIEVEMENTS_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.USER_ACHIEVEMENTS_SUCCESS, res, nil).Send(ctx)
}

// GET /api/users/me/dashboard
func (h *userHandler) Dashboard(ctx *fiber.Ctx) error {
	res, err := h.usecase.Dashboard(ctx.UserContext(), userID(ctx))
	if err != nil {
		return fail(ctx, domain.USER_DASHBOARD_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.USER_DASHBOARD_SUCCESS, res, nil).Send(ctx)
}

// GET /api/leaderboard?limit=10
func (h *userHandler) Leaderboard(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", usecase.DefaultLeaderboardSize)

	entries, err := h.leaderboard.Top(ctx.UserContext(), userID(ctx), limit)
	if err != nil {
		return fail(ctx, domain.LEADERBOARD_GET_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.LEADERBOARD_GET_SUCCESS, entries, fiber.Map{"limit": limit}).Send(ctx)
}
