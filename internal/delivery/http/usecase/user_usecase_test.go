package usecase

import (
	"context"
	"testing"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository/repotest"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserUsecase(users *repotest.Users, progress *repotest.Progress) UserUsecase {
	return NewUserUsecase(UserConfig{Users: users, Progress: progress, Log: testLogger(), Now: fixedNow})
}

func TestUser_EnsureProfile(t *testing.T) {
	users := repotest.NewUsers()
	uc := newUserUsecase(users, repotest.NewProgress())
	ctx := context.Background()

	p, err := uc.EnsureProfile(ctx, "id-1", "ada@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "ada", p.Username)
	assert.Equal(t, player.DefaultHearts, p.Hearts)
	assert.Equal(t, lesson.LanguagePython, p.PreferredLanguage)

	again, err := uc.EnsureProfile(ctx, "id-1", "ada@example.com", "other")
	require.NoError(t, err)
	assert.Equal(t, "ada", again.Username, "existing profiles are kept")
}

func TestUser_MeMissingProfile(t *testing.T) {
	uc := newUserUsecase(repotest.NewUsers(), repotest.NewProgress())
	_, err := uc.Me(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUser_UpdatePreferences(t *testing.T) {
	users := repotest.NewUsers()
	seedProfile(t, users, "u1", nil)
	uc := newUserUsecase(users, repotest.NewProgress())
	ctx := context.Background()

	goal := 120
	p, err := uc.UpdatePreferences(ctx, "u1", entity.UpdatePreferencesRequest{PreferredLanguage: "cpp", DailyGoal: &goal})
	require.NoError(t, err)
	assert.Equal(t, lesson.LanguageCpp, p.PreferredLanguage)
	assert.Equal(t, 120, p.DailyGoal)

	_, err = uc.UpdatePreferences(ctx, "u1", entity.UpdatePreferencesRequest{PreferredLanguage: "rust"})
	assert.ErrorIs(t, err, player.ErrUnsupportedLanguage)

	me, err := uc.Me(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, lesson.LanguageCpp, me.PreferredLanguage)
}

func TestUser_Hearts(t *testing.T) {
	users := repotest.NewUsers()
	seedProfile(t, users, "u1", func(p player.Profile) player.Profile {
		p.Hearts = 1
		return p
	})
	uc := newUserUsecase(users, repotest.NewProgress())
	ctx := context.Background()

	p, err := uc.UseHeart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Hearts)

	_, err = uc.UseHeart(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoHearts)

	for i := 0; i < player.MaxHearts+2; i++ {
		p, err = uc.AddHeart(ctx, "u1")
		require.NoError(t, err)
	}
	assert.Equal(t, player.MaxHearts, p.Hearts)
}

func TestUser_StreakUnlocksWeekWarrior(t *testing.T) {
	users := repotest.NewUsers()
	seedProfile(t, users, "u1", func(p player.Profile) player.Profile {
		p.Streak = 6
		return p
	})
	publisher := &recordingPublisher{}
	uc := NewUserUsecase(UserConfig{Users: users, Progress: repotest.NewProgress(), Publisher: publisher, Log: testLogger(), Now: fixedNow})
	ctx := context.Background()

	p, err := uc.IncrementStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Streak)
	assert.True(t, p.HasAchievement(player.WeekWarriorID))
	assert.Equal(t, 100, p.XP)

	p, err = uc.IncrementStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 100, p.XP, "achievements unlock once")
	assert.Equal(t, []string{events.TypeAchievementUnlocked}, publisher.types())

	stored, err := users.FindAchievements(nil, "u1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	res, err := uc.Achievements(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, res.Achievements, 1)
	assert.NotEmpty(t, res.Badges)
}

func TestUser_Dashboard(t *testing.T) {
	users := repotest.NewUsers()
	progress := repotest.NewProgress()
	seedProfile(t, users, "u1", nil)
	require.NoError(t, progress.IncrementActivity(nil, "u1", "2025-03-10", 30))
	require.NoError(t, progress.IncrementActivity(nil, "u1", "2025-03-10", 40))
	require.NoError(t, progress.IncrementActivity(nil, "u1", "2025-03-01", 10))
	require.NoError(t, progress.IncrementActivity(nil, "u1", "2023-01-01", 10))

	uc := newUserUsecase(users, progress)
	res, err := uc.Dashboard(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, res.Activity, ActivityDays)
	last := res.Activity[len(res.Activity)-1]
	assert.Equal(t, "2025-03-10", last.Date)
	assert.Equal(t, 2, last.Count)
	assert.Equal(t, 70, res.TodayXP)
	assert.Equal(t, 100, res.DailyGoalProgress, "capped at the goal")
	assert.Equal(t, "2024-03-11", res.Activity[0].Date)
	assert.Equal(t, 0, res.Activity[0].Count)
}
