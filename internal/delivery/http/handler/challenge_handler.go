package handler

import (
	"strings"

	"github.com/evandrarf/dsadojo-be/internal/challenge"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/domain"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ChallengeHandler interface {
		List(ctx *fiber.Ctx) error
		Open(ctx *fiber.Ctx) error
		Complete(ctx *fiber.Ctx) error
	}

	challengeHandler struct {
		logger  *logrus.Logger
		usecase usecase.ChallengeUsecase
	}
)

func NewChallengeHandler(logger *logrus.Logger, usecase usecase.ChallengeUsecase) ChallengeHandler {
	return &challengeHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /api/challenges?difficulty=easy&category=Arrays&search=sum
func (h *challengeHandler) List(ctx *fiber.Ctx) error {
	filter := challenge.Filter{
		Difficulty: strings.TrimSpace(ctx.Query("difficulty")),
		Category:   strings.TrimSpace(ctx.Query("category")),
		Search:     strings.TrimSpace(ctx.Query("search")),
	}

	items, err := h.usecase.List(ctx.UserContext(), userID(ctx), filter)
	if err != nil {
		return fail(ctx, domain.CHALLENGE_LIST_FAILED, err, h.logger)
	}

	meta := fiber.Map{
		"total":      len(items),
		"categories": challenge.Categories(),
	}
	return response.NewSuccess(domain.CHALLENGE_LIST_SUCCESS, items, meta).Send(ctx)
}

// GET /api/challenges/:id/open
func (h *challengeHandler) Open(ctx *fiber.Ctx) error {
	link, err := h.usecase.Link(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return fail(ctx, domain.CHALLENGE_OPEN_FAILED, err, h.logger)
	}

	return ctx.Redirect(link, fiber.StatusFound)
}

// POST /api/challenges/:id/complete
func (h *challengeHandler) Complete(ctx *fiber.Ctx) error {
	res, err := h.usecase.Complete(ctx.UserContext(), userID(ctx), ctx.Params("id"))
	if err != nil {
		return fail(ctx, domain.CHALLENGE_COMPLETE_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.CHALLENGE_COMPLETE_SUCCESS, res, nil).Send(ctx)
}
