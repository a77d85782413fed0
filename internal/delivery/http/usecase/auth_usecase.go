package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/pkg/identity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

type AuthUsecase interface {
	SignIn(ctx context.Context, req entity.SignInRequest) (*entity.AuthResponse, error)
	SignUp(ctx context.Context, req entity.SignUpRequest) (*entity.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (string, error)
}

type AuthConfig struct {
	DB         *gorm.DB
	Identity   identity.Client
	Users      repository.UserRepository
	UserCase   UserUsecase
	SessionTTL time.Duration
	Log        *logrus.Logger
	Now        func() time.Time
}

type authUsecase struct {
	cfg AuthConfig
	now func() time.Time
}

func NewAuthUsecase(cfg AuthConfig) AuthUsecase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	return &authUsecase{cfg: cfg, now: nowFunc(cfg.Now)}
}

func (u *authUsecase) SignIn(ctx context.Context, req entity.SignInRequest) (*entity.AuthResponse, error) {
	user, err := u.cfg.Identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return u.startSession(ctx, user, "")
}

func (u *authUsecase) SignUp(ctx context.Context, req entity.SignUpRequest) (*entity.AuthResponse, error) {
	user, err := u.cfg.Identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return u.startSession(ctx, user, req.Username)
}

func (u *authUsecase) startSession(ctx context.Context, user *identity.User, username string) (*entity.AuthResponse, error) {
	profile, err := u.cfg.UserCase.EnsureProfile(ctx, user.ID, user.Email, username)
	if err != nil {
		return nil, err
	}

	session := &internalEntity.AuthSession{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: u.now().UTC().Add(u.cfg.SessionTTL),
	}
	if err := u.cfg.Users.CreateAuthSession(u.cfg.DB, session); err != nil {
		return nil, err
	}
	if n, err := u.cfg.Users.DeleteExpiredAuthSessions(u.cfg.DB, u.now().UTC()); err != nil {
		u.cfg.Log.WithError(err).Warn("failed to prune expired sessions")
	} else if n > 0 {
		u.cfg.Log.WithField("count", n).Debug("pruned expired sessions")
	}

	u.cfg.Log.WithField("user_id", user.ID).Info("session started")
	return &entity.AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		User:      profile,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	return u.cfg.Users.DeleteAuthSession(u.cfg.DB, token)
}

// Authenticate resolves a bearer token to its user id.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	session, err := u.cfg.Users.FindAuthSession(u.cfg.DB, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if !u.now().Before(session.ExpiresAt) {
		if err := u.cfg.Users.DeleteAuthSession(u.cfg.DB, token); err != nil {
			u.cfg.Log.WithError(err).Warn("failed to delete expired session")
		}
		return "", ErrUnauthorized
	}
	return session.UserID, nil
}
