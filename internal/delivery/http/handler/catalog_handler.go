package handler

import (
	"strings"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/domain"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	CatalogHandler interface {
		Categories(ctx *fiber.Ctx) error
		Category(ctx *fiber.Ctx) error
		Lesson(ctx *fiber.Ctx) error
	}

	catalogHandler struct {
		logger  *logrus.Logger
		usecase usecase.CatalogUsecase
	}
)

func NewCatalogHandler(logger *logrus.Logger, usecase usecase.CatalogUsecase) CatalogHandler {
	return &catalogHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /api/categories?language=python|java|cpp
func (h *catalogHandler) Categories(ctx *fiber.Ctx) error {
	language := strings.ToLower(strings.TrimSpace(ctx.Query("language")))

	categories, err := h.usecase.Categories(ctx.UserContext(), userID(ctx), language)
	if err != nil {
		return fail(ctx, domain.CATALOG_GET_CATEGORIES_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.CATALOG_GET_CATEGORIES_SUCCESS, categories, nil).Send(ctx)
}

// GET /api/categories/:category_id
func (h *catalogHandler) Category(ctx *fiber.Ctx) error {
	language := strings.ToLower(strings.TrimSpace(ctx.Query("language")))

	category, err := h.usecase.Category(ctx.UserContext(), userID(ctx), ctx.Params("category_id"), language)
	if err != nil {
		return fail(ctx, domain.CATALOG_GET_CATEGORY_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.CATALOG_GET_CATEGORY_SUCCESS, category, nil).Send(ctx)
}

// GET /api/categories/:category_id/lessons/:lesson_id
func (h *catalogHandler) Lesson(ctx *fiber.Ctx) error {
	l, err := h.usecase.Lesson(ctx.UserContext(), userID(ctx), ctx.Params("category_id"), ctx.Params("lesson_id"))
	if err != nil {
		return fail(ctx, domain.CATALOG_GET_LESSON_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.CATALOG_GET_LESSON_SUCCESS, l, nil).Send(ctx)
}
