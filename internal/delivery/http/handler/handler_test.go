package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/evandrarf/dsadojo-be/internal/challenge"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/usecase"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/identity"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/evandrarf/dsadojo-be/internal/quiz"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&identity.ProviderError{Status: 422, Message: "taken"}, fiber.StatusUnprocessableEntity},
		{&identity.ProviderError{Status: 500, Message: "boom"}, fiber.StatusBadGateway},
		{fmt.Errorf("sign in: %w", identity.ErrUnavailable), fiber.StatusServiceUnavailable},
		{usecase.ErrUnauthorized, fiber.StatusUnauthorized},
		{fmt.Errorf("%w: x", lesson.ErrLessonNotFound), fiber.StatusNotFound},
		{challenge.ErrChallengeNotFound, fiber.StatusNotFound},
		{usecase.ErrQuizNotFound, fiber.StatusNotFound},
		{quiz.ErrInvalidSubmission, fiber.StatusBadRequest},
		{player.ErrUnsupportedLanguage, fiber.StatusBadRequest},
		{quiz.ErrLessonIncomplete, fiber.StatusConflict},
		{usecase.ErrAlreadyCompleted, fiber.StatusConflict},
		{usecase.ErrNoHearts, fiber.StatusConflict},
		{errors.New("disk on fire"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
