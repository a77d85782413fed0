package handler

import (
	"errors"

	"github.com/evandrarf/dsadojo-be/internal/challenge"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/identity"
	"github.com/evandrarf/dsadojo-be/internal/pkg/response"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/evandrarf/dsadojo-be/internal/quiz"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	LocalUserID = "user_id"
	LocalToken  = "token"

	// LearnPath is where clients land after following a dead catalog link.
	LearnPath = "/learn"
)

func userID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(LocalUserID).(string)
	return id
}

// statusFor maps usecase and domain errors to HTTP status codes.
func statusFor(err error) int {
	var pe *identity.ProviderError
	switch {
	case errors.As(err, &pe):
		if pe.Status >= fiber.StatusInternalServerError {
			return fiber.StatusBadGateway
		}
		return pe.Status
	case errors.Is(err, identity.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, lesson.ErrCategoryNotFound),
		errors.Is(err, lesson.ErrLessonNotFound),
		errors.Is(err, challenge.ErrChallengeNotFound),
		errors.Is(err, usecase.ErrQuizNotFound),
		errors.Is(err, usecase.ErrProfileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, quiz.ErrInvalidSubmission),
		errors.Is(err, quiz.ErrInvalidPosition),
		errors.Is(err, player.ErrUnsupportedLanguage):
		return fiber.StatusBadRequest
	case errors.Is(err, quiz.ErrInvalidTransition),
		errors.Is(err, quiz.ErrLessonIncomplete),
		errors.Is(err, quiz.ErrSessionCompleted),
		errors.Is(err, usecase.ErrNoHearts),
		errors.Is(err, usecase.ErrExplainBeforeCheck),
		errors.Is(err, usecase.ErrAlreadyCompleted):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// fail sends err in the failure envelope. Internal errors are logged and
// their message is not exposed.
func fail(ctx *fiber.Ctx, msg string, err error, logger *logrus.Logger) error {
	if errors.Is(err, lesson.ErrCategoryNotFound) || errors.Is(err, lesson.ErrLessonNotFound) {
		return response.NewNotFound(msg, err, LearnPath).Send(ctx)
	}
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError && code != fiber.StatusBadGateway && code != fiber.StatusServiceUnavailable {
		return response.NewFailed(msg, err, logger).Send(ctx)
	}
	return response.NewFailed(msg, fiber.NewError(code, err.Error()), logger).Send(ctx)
}
