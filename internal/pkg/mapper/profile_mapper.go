package mapper

import (
	"fmt"

	dbEntity "github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/player"
)

func ConvertToProfile(row *dbEntity.UserProfile, achievements []dbEntity.UserAchievement) (player.Profile, error) {
	p := player.Profile{
		ID:                row.ID,
		Username:          row.Username,
		Email:             row.Email,
		Level:             row.Level,
		XP:                row.XP,
		Streak:            row.Streak,
		Hearts:            row.Hearts,
		Crowns:            row.Crowns,
		IsPro:             row.IsPro,
		DailyGoal:         row.DailyGoal,
		JoinDate:          row.JoinDate,
		PreferredLanguage: lesson.Language(row.PreferredLanguage),
		Achievements:      make([]player.Achievement, 0, len(achievements)),
		LanguageProgress:  map[lesson.Language]player.LanguageProgress{},
	}
	if err := unmarshalJSON(row.LanguageProgress, &p.LanguageProgress); err != nil {
		return player.Profile{}, fmt.Errorf("language progress of %s: %w", row.ID, err)
	}
	for _, a := range achievements {
		p.Achievements = append(p.Achievements, player.Achievement{
			ID:          a.AchievementID,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			XPReward:    a.XPReward,
			UnlockedAt:  a.UnlockedAt,
		})
	}
	return p, nil
}

// ConvertToProfileEntity returns the profile row. Achievements are stored
// separately, see ConvertToAchievementEntity.
func ConvertToProfileEntity(p player.Profile) (*dbEntity.UserProfile, error) {
	progress, err := marshalJSON(p.LanguageProgress)
	if err != nil {
		return nil, fmt.Errorf("language progress of %s: %w", p.ID, err)
	}
	return &dbEntity.UserProfile{
		ID:                p.ID,
		Username:          p.Username,
		Email:             p.Email,
		Level:             p.Level,
		XP:                p.XP,
		Streak:            p.Streak,
		Hearts:            p.Hearts,
		Crowns:            p.Crowns,
		IsPro:             p.IsPro,
		DailyGoal:         p.DailyGoal,
		PreferredLanguage: string(p.PreferredLanguage),
		LanguageProgress:  progress,
		JoinDate:          p.JoinDate,
	}, nil
}

func ConvertToAchievementEntity(userID string, a player.Achievement) *dbEntity.UserAchievement {
	return &dbEntity.UserAchievement{
		UserID:        userID,
		AchievementID: a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Icon:          a.Icon,
		XPReward:      a.XPReward,
		UnlockedAt:    a.UnlockedAt,
	}
}
