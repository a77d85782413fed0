package config

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	v := viper.New()
	v.Set("log.level", "debug")
	assert.Equal(t, logrus.DebugLevel, NewLogger(v).GetLevel())

	v.Set("log.level", "nonsense")
	assert.Equal(t, logrus.InfoLevel, NewLogger(v).GetLevel())
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	assert.Equal(t, 8080, v.GetInt("api.port"))
	assert.Equal(t, "168h0m0s", v.GetDuration("identity.session_ttl").String())
}

func TestErrorHandler(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	v := viper.New()
	SetDefaults(v)
	api := NewAPI(v, log)
	api.Get("/boom", func(ctx *fiber.Ctx) error { return fiber.ErrTeapot })
	api.Get("/panic-free-500", func(ctx *fiber.Ctx) error { return io.ErrUnexpectedEOF })

	res, err := api.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, res.StatusCode)

	res, err = api.Test(httptest.NewRequest("GET", "/panic-free-500", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}
