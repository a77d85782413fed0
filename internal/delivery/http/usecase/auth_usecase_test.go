package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository/repotest"
	internalEntity "github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/pkg/identity"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentity struct {
	users map[string]string // email -> password
}

func (s *stubIdentity) SignIn(_ context.Context, email, password string) (*identity.User, error) {
	if pw, ok := s.users[email]; !ok || pw != password {
		return nil, &identity.ProviderError{Status: 400, Message: "Invalid login credentials"}
	}
	return &identity.User{ID: "id-" + email, Email: email}, nil
}

func (s *stubIdentity) SignUp(_ context.Context, email, password string) (*identity.User, error) {
	if _, ok := s.users[email]; ok {
		return nil, &identity.ProviderError{Status: 422, Message: "User already registered"}
	}
	s.users[email] = password
	return &identity.User{ID: "id-" + email, Email: email}, nil
}

func newAuthUsecase(users *repotest.Users, now func() time.Time) AuthUsecase {
	return NewAuthUsecase(AuthConfig{
		Identity: &stubIdentity{users: map[string]string{}},
		Users:    users,
		UserCase: NewUserUsecase(UserConfig{Users: users, Progress: repotest.NewProgress(), Log: testLogger(), Now: now}),
		Log:      testLogger(),
		Now:      now,
	})
}

func TestAuth_SignUpSignInLogout(t *testing.T) {
	users := repotest.NewUsers()
	uc := newAuthUsecase(users, fixedNow)
	ctx := context.Background()

	res, err := uc.SignUp(ctx, entity.SignUpRequest{Email: "ada@example.com", Password: "secret123", Username: "Ada"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Ada", res.User.(*player.Profile).Username)
	assert.Equal(t, testNow.Add(DefaultSessionTTL).Format(time.RFC3339), res.ExpiresAt)

	_, err = uc.SignUp(ctx, entity.SignUpRequest{Email: "ada@example.com", Password: "x"})
	var perr *identity.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 422, perr.Status)

	_, err = uc.SignIn(ctx, entity.SignInRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorAs(t, err, &perr)

	signIn, err := uc.SignIn(ctx, entity.SignInRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", signIn.User.(*player.Profile).Username)

	userID, err := uc.Authenticate(ctx, signIn.Token)
	require.NoError(t, err)
	assert.Equal(t, "id-ada@example.com", userID)

	require.NoError(t, uc.Logout(ctx, signIn.Token))
	_, err = uc.Authenticate(ctx, signIn.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_ExpiredSession(t *testing.T) {
	users := repotest.NewUsers()
	require.NoError(t, users.CreateAuthSession(nil, &internalEntity.AuthSession{
		Token:     "old",
		UserID:    "u1",
		ExpiresAt: testNow.Add(-time.Minute),
	}))
	uc := newAuthUsecase(users, fixedNow)

	_, err := uc.Authenticate(context.Background(), "old")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, users.SessionCount())

	_, err = uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_SignInPrunesExpiredSessions(t *testing.T) {
	users := repotest.NewUsers()
	require.NoError(t, users.CreateAuthSession(nil, &internalEntity.AuthSession{
		Token:     "stale",
		UserID:    "someone",
		ExpiresAt: testNow.Add(-time.Hour),
	}))
	uc := newAuthUsecase(users, fixedNow)

	_, err := uc.SignUp(context.Background(), entity.SignUpRequest{Email: "bob@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, 1, users.SessionCount())
}
