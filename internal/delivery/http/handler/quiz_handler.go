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
	QuizHandler interface {
		Start(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		Answer(ctx *fiber.Ctx) error
		Retry(ctx *fiber.Ctx) error
		Next(ctx *fiber.Ctx) error
		Explain(ctx *fiber.Ctx) error
		TutorHistory(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /api/quiz/sessions
func (h *quizHandler) Start(ctx *fiber.Ctx) error {
	var req entity.StartQuizRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_START_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.Start(ctx.UserContext(), userID(ctx), req)
	if err != nil {
		return fail(ctx, domain.QUIZ_START_FAILED, err, h.logger)
	}

	return response.NewCreated(domain.QUIZ_START_SUCCESS, res).Send(ctx)
}

// GET /api/quiz/sessions/:session_id
func (h *quizHandler) Get(ctx *fiber.Ctx) error {
	res, err := h.usecase.Get(ctx.UserContext(), userID(ctx), ctx.Params("session_id"))
	if err != nil {
		return fail(ctx, domain.QUIZ_GET_SESSION_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_GET_SESSION_SUCCESS, res, nil).Send(ctx)
}

// POST /api/quiz/sessions/:session_id/answer
func (h *quizHandler) Answer(ctx *fiber.Ctx) error {
	var req entity.AnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.Answer(ctx.UserContext(), userID(ctx), ctx.Params("session_id"), req.Submission())
	if err != nil {
		return fail(ctx, domain.QUIZ_ANSWER_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_ANSWER_SUCCESS, res, nil).Send(ctx)
}

// POST /api/quiz/sessions/:session_id/retry
func (h *quizHandler) Retry(ctx *fiber.Ctx) error {
	res, err := h.usecase.Retry(ctx.UserContext(), userID(ctx), ctx.Params("session_id"))
	if err != nil {
		return fail(ctx, domain.QUIZ_RETRY_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_RETRY_SUCCESS, res, nil).Send(ctx)
}

// POST /api/quiz/sessions/:session_id/next
func (h *quizHandler) Next(ctx *fiber.Ctx) error {
	res, err := h.usecase.Next(ctx.UserContext(), userID(ctx), ctx.Params("session_id"))
	if err != nil {
		return fail(ctx, domain.QUIZ_NEXT_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_NEXT_SUCCESS, res, nil).Send(ctx)
}

// POST /api/quiz/sessions/:session_id/explain
func (h *quizHandler) Explain(ctx *fiber.Ctx) error {
	var req entity.ExplainRequest
	if len(ctx.Body()) > 0 {
		if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
			return response.NewFailed(domain.QUIZ_EXPLAIN_FAILED, err, h.logger).Send(ctx)
		}
	}

	res, err := h.usecase.Explain(ctx.UserContext(), userID(ctx), ctx.Params("session_id"), req.Message)
	if err != nil {
		return fail(ctx, domain.QUIZ_EXPLAIN_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_EXPLAIN_SUCCESS, res, nil).Send(ctx)
}

// GET /api/quiz/sessions/:session_id/explain/history
func (h *quizHandler) TutorHistory(ctx *fiber.Ctx) error {
	history, err := h.usecase.TutorHistory(ctx.UserContext(), userID(ctx), ctx.Params("session_id"))
	if err != nil {
		return fail(ctx, domain.QUIZ_TUTOR_HISTORY_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_TUTOR_HISTORY_SUCCESS, history, nil).Send(ctx)
}
