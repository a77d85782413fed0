package middleware

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Authenticator resolves a bearer token to a user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
	Auth   Authenticator
}

type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
	Auth   Authenticator
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:    c.Log,
		Config: c.Config,
		Auth:   c.Auth,
	}
}
