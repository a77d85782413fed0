package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var ErrUnavailable = errors.New("identity provider unavailable")

// ProviderError is a rejection returned by the identity provider. Message is
// passed to the learner verbatim.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

// User is the identity confirmed by the provider.
type User struct {
	ID          string
	Email       string
	AccessToken string
}

type Client interface {
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignUp(ctx context.Context, email, password string) (*User, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Log     *logrus.Logger
}

type gotrueClient struct {
	cfg            Config
	circuitBreaker circuitbreaker.CircuitBreaker[*User]
	retrier        retry.Retry[*User]
}

// NewClient talks to a GoTrue compatible auth REST API.
func NewClient(cfg Config) Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &gotrueClient{cfg: cfg}
	c.circuitBreaker = circuitbreaker.New[*User](circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Only outages count against the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || !isRetryable(err)
		},
		OnStateChange: func(from, to circuitbreaker.State) {
			if cfg.Log != nil {
				cfg.Log.WithFields(logrus.Fields{
					"from": from.String(),
					"to":   to.String(),
				}).Warn("identity circuit breaker state change")
			}
		},
	})
	c.retrier = retry.New[*User](retry.Config{
		MaxAttempts:   3,
		InitialDelay:  200 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		Multiplier:    2.0,
		BackoffPolicy: retry.BackoffExponential,
		Jitter:        true,
		IsRetryable:   isRetryable,
	})
	return c
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Status == http.StatusTooManyRequests || pe.Status >= http.StatusInternalServerError
	}
	return false
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// authPayload covers both the token and the signup response shapes.
type authPayload struct {
	AccessToken string       `json:"access_token"`
	User        *userPayload `json:"user"`
	ID          string       `json:"id"`
	Email       string       `json:"email"`

	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (p authPayload) errorMessage() string {
	for _, s := range []string{p.ErrorDescription, p.Msg, p.Message, p.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (c *gotrueClient) SignIn(ctx context.Context, email, password string) (*User, error) {
	return c.call(ctx, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password})
}

func (c *gotrueClient) SignUp(ctx context.Context, email, password string) (*User, error) {
	return c.call(ctx, "/auth/v1/signup", credentials{Email: email, Password: password})
}

func (c *gotrueClient) call(ctx context.Context, path string, body credentials) (*User, error) {
	return c.circuitBreaker.Execute(ctx, func(ctx context.Context) (*User, error) {
		return c.retrier.Do(ctx, func(ctx context.Context) (*User, error) {
			return c.post(ctx, path, body)
		})
	})
}

func (c *gotrueClient) post(ctx context.Context, path string, body credentials) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := fiber.Post(c.cfg.BaseURL + path)
	a.Set("apikey", c.cfg.APIKey)
	a.Set(fiber.HeaderAuthorization, "Bearer "+c.cfg.APIKey)
	a.Timeout(c.cfg.Timeout)
	a.JSON(body)

	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, errors.Join(errs...))
	}

	var payload authPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil && code < 400 {
			return nil, fmt.Errorf("decode identity response: %w", err)
		}
	}

	if code >= 400 {
		msg := payload.errorMessage()
		if msg == "" {
			msg = http.StatusText(code)
		}
		return nil, &ProviderError{Status: code, Message: msg}
	}

	user := &User{AccessToken: payload.AccessToken, ID: payload.ID, Email: payload.Email}
	if payload.User != nil {
		user.ID = payload.User.ID
		user.Email = payload.User.Email
	}
	if user.ID == "" {
		return nil, fmt.Errorf("identity response has no user id")
	}
	if user.Email == "" {
		user.Email = body.Email
	}
	return user, nil
}
