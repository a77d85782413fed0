package entity

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile - gamified learner state, keyed by the identity provider user id
type UserProfile struct {
	ID                string         `gorm:"primarykey;size:100" json:"id"`
	Username          string         `gorm:"size:100;not null" json:"username"`
	Email             string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Level             int            `gorm:"not null;default:1" json:"level"`
	XP                int            `gorm:"not null;default:0;index" json:"xp"`
	Streak            int            `gorm:"not null;default:0" json:"streak"`
	Hearts            int            `gorm:"not null;default:5" json:"hearts"`
	Crowns            int            `gorm:"not null;default:0" json:"crowns"`
	IsPro             bool           `gorm:"not null;default:false" json:"is_pro"`
	DailyGoal         int            `gorm:"not null;default:50" json:"daily_goal"`
	PreferredLanguage string         `gorm:"size:20;not null;default:python" json:"preferred_language"`
	LanguageProgress  datatypes.JSON `json:"language_progress"` // map language -> progress
	JoinDate          time.Time      `gorm:"not null" json:"join_date"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// UserAchievement - unlocked achievements per user
type UserAchievement struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        string    `gorm:"uniqueIndex:idx_user_achievement;size:100;not null" json:"user_id"`
	AchievementID string    `gorm:"uniqueIndex:idx_user_achievement;size:50;not null" json:"achievement_id"`
	Title         string    `gorm:"size:100;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Icon          string    `gorm:"size:20" json:"icon"`
	XPReward      int       `gorm:"not null;default:0" json:"xp_reward"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}

// AuthSession - local "logged in" flag created after the identity provider accepts
type AuthSession struct {
	Token     string    `gorm:"primarykey;size:64" json:"token"`
	UserID    string    `gorm:"size:100;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuthSession) TableName() string {
	return "auth_sessions"
}
