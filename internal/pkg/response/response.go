package response

import (
	"errors"

	"github.com/evandrarf/dsadojo-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"

	"github.com/sirupsen/logrus"
)

type Response struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Error      any    `json:"error,omitempty"`
	Data       any    `json:"data,omitempty"`
	Meta       any    `json:"meta,omitempty"`
}

func NewInternalServerError() *Response {
	res := &Response{
		Success:    false,
		Message:    "Internal Server Error",
		StatusCode: fiber.StatusInternalServerError,
	}
	return res
}

func NewFailed(msg string, err error, logger *logrus.Logger) *Response {
	res := &Response{
		Success:    false,
		Message:    msg,
		StatusCode: fiber.StatusInternalServerError,
	}

	var (
		fe     *fiber.Error
		fields *validate.FieldsError
	)
	if errors.As(err, &fe) {
		res.StatusCode = fe.Code
		if fe.Message != "" {
			res.Error = fe.Message
		}
	} else if errors.As(err, &fields) {
		res.StatusCode = fiber.StatusBadRequest
		res.Error = fields.Fields
	}

	if logger != nil && res.StatusCode >= fiber.StatusInternalServerError {
		logger.WithError(err).WithField("status", res.StatusCode).Error(msg)
	}

	return res
}

// NewNotFound is a 404 failure that points the client at a safe page.
func NewNotFound(msg string, err error, redirect string) *Response {
	res := &Response{
		Success:    false,
		Message:    msg,
		Error:      err.Error(),
		StatusCode: fiber.StatusNotFound,
	}
	if redirect != "" {
		res.Meta = fiber.Map{"redirect": redirect}
	}
	return res
}

func NewSuccess(msg string, data any, meta any) *Response {
	res := &Response{
		Success:    true,
		Message:    msg,
		StatusCode: fiber.StatusOK,
		Data:       data,
		Meta:       meta,
	}

	return res
}

// NewCreated is NewSuccess answered with 201.
func NewCreated(msg string, data any) *Response {
	res := NewSuccess(msg, data, nil)
	res.StatusCode = fiber.StatusCreated
	return res
}

func (r *Response) Send(ctx *fiber.Ctx) error {
	return ctx.Status(r.StatusCode).JSON(r)
}
