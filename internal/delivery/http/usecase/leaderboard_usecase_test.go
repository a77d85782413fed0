package usecase

import (
	"context"
	"testing"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository/repotest"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_Top(t *testing.T) {
	users := repotest.NewUsers()
	for _, u := range []struct {
		id     string
		xp     int
		streak int
	}{{"a", 100, 1}, {"b", 300, 0}, {"c", 100, 5}, {"me", 50, 0}} {
		seedProfile(t, users, u.id, func(p player.Profile) player.Profile {
			p = p.AddXP(u.xp)
			p.Streak = u.streak
			return p
		})
	}
	uc := NewLeaderboardUsecase(LeaderboardConfig{Users: users})

	top, err := uc.Top(context.Background(), "me", 0)
	require.NoError(t, err)
	require.Len(t, top, 4)
	ids := []string{top[0].UserID, top[1].UserID, top[2].UserID, top[3].UserID}
	assert.Equal(t, []string{"b", "c", "a", "me"}, ids)
	assert.Equal(t, 1, top[0].Rank)
	assert.True(t, top[3].IsMe)
	assert.Equal(t, player.LevelFor(300), top[0].Level)

	two, err := uc.Top(context.Background(), "me", 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}
