package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evandrarf/dsadojo-be/internal/lesson"
)

var joined = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewProfile(t *testing.T) {
	p := NewProfile("u1", "ada", "ada@example.com", joined)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, DefaultHearts, p.Hearts)
	assert.Equal(t, DefaultGoal, p.DailyGoal)
	assert.Equal(t, lesson.LanguagePython, p.PreferredLanguage)
}

func TestAddXP_Level(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1}, {299, 1}, {300, 2}, {1250, 5}, {3000, 11},
	}
	for _, tt := range tests {
		p := Profile{}.AddXP(tt.xp)
		assert.Equal(t, tt.level, p.Level, "xp %d", tt.xp)
	}
}

func TestUseHeart(t *testing.T) {
	p := Profile{Hearts: 0}
	got, ok := p.UseHeart()
	assert.False(t, ok)
	assert.Equal(t, 0, got.Hearts)

	p = Profile{Hearts: 3}
	got, ok = p.UseHeart()
	assert.True(t, ok)
	assert.Equal(t, 2, got.Hearts)
	assert.Equal(t, 3, p.Hearts, "receiver is untouched")
}

func TestAddHeart_Capped(t *testing.T) {
	p := Profile{Hearts: MaxHearts - 1}.AddHeart()
	assert.Equal(t, MaxHearts, p.Hearts)
	assert.Equal(t, MaxHearts, p.AddHeart().Hearts)
}

func TestAddAchievement_Dedupes(t *testing.T) {
	p := NewProfile("u1", "ada", "", joined)
	p = p.AddAchievement(FirstSteps(joined))
	p = p.AddAchievement(FirstSteps(joined.Add(time.Hour)))
	require.Len(t, p.Achievements, 1)
	assert.Equal(t, 50, p.XP)
	assert.True(t, p.HasAchievement(FirstStepsID))
}

func TestAddAchievement_DoesNotAlias(t *testing.T) {
	base := NewProfile("u1", "ada", "", joined)
	base.Achievements = make([]Achievement, 0, 4)
	a := base.AddAchievement(FirstSteps(joined))
	b := base.AddAchievement(WeekWarrior(joined))
	assert.Equal(t, FirstStepsID, a.Achievements[0].ID)
	assert.Equal(t, WeekWarriorID, b.Achievements[0].ID)
	assert.Empty(t, base.Achievements)
}

func TestUnlocked(t *testing.T) {
	before := NewProfile("u1", "ada", "", joined).AddAchievement(FirstSteps(joined))
	after := before.AddAchievement(FirstSteps(joined)).AddAchievement(WeekWarrior(joined))

	unlocked := before.Unlocked(after)
	require.Len(t, unlocked, 1)
	assert.Equal(t, WeekWarriorID, unlocked[0].ID)
	assert.Empty(t, after.Unlocked(after))
}

func TestSetPreferredLanguage(t *testing.T) {
	p, err := Profile{}.SetPreferredLanguage(lesson.LanguageCpp)
	require.NoError(t, err)
	assert.Equal(t, lesson.LanguageCpp, p.PreferredLanguage)

	_, err = p.SetPreferredLanguage("javascript")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestRecordLessonCompletion(t *testing.T) {
	p := NewProfile("u1", "ada", "", joined)
	p = p.RecordLessonCompletion(lesson.LanguageJava, 75, true)
	p = p.RecordLessonCompletion(lesson.LanguageJava, 75, false)

	assert.Equal(t, LanguageProgress{LessonsCompleted: 2, TotalXP: 150, Crowns: 1}, p.LanguageProgress[lesson.LanguageJava])
	assert.Equal(t, 1, p.Crowns)
}

func TestIncrementStreak(t *testing.T) {
	assert.Equal(t, 8, Profile{Streak: 7}.IncrementStreak().Streak)
}

func TestBadges(t *testing.T) {
	badges := Badges(Profile{Level: 5, Streak: 7})
	require.Len(t, badges, 15)

	unlocked := map[string]int{}
	for _, b := range badges {
		if b.Unlocked {
			unlocked[b.Kind]++
		}
	}
	assert.Equal(t, 5, unlocked[BadgeLevel])
	assert.Equal(t, 2, unlocked[BadgeStreak])
}
