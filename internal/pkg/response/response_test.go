package response

import (
	"errors"
	"testing"

	"github.com/evandrarf/dsadojo-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewFailed(t *testing.T) {
	res := NewFailed("Failed", fiber.NewError(fiber.StatusNotFound, "lesson not found"), nil)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Equal(t, "lesson not found", res.Error)
	assert.False(t, res.Success)

	res = NewFailed("Failed", validate.NewFieldsError(map[string]string{"email": "required"}), nil)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, map[string]string{"email": "required"}, res.Error)

	res = NewFailed("Failed", errors.New("db down"), nil)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
	assert.Nil(t, res.Error)
}

func TestNewSuccess(t *testing.T) {
	res := NewSuccess("OK", []int{1}, fiber.Map{"total": 1})
	assert.True(t, res.Success)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestNewCreated(t *testing.T) {
	res := NewCreated("Created", fiber.Map{"id": "x"})
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	assert.True(t, res.Success)
}

func TestNewNotFound(t *testing.T) {
	res := NewNotFound("Failed", errors.New("category not found: trie"), "/learn")
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.False(t, res.Success)
	assert.Equal(t, "category not found: trie", res.Error)
	assert.Equal(t, fiber.Map{"redirect": "/learn"}, res.Meta)

	res = NewNotFound("Failed", errors.New("gone"), "")
	assert.Nil(t, res.Meta)
}
