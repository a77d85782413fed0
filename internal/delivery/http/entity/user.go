package entity

import "github.com/evandrarf/dsadojo-be/internal/player"

type UpdatePreferencesRequest struct {
	PreferredLanguage string `json:"preferred_language" validate:"omitempty,oneof=python java cpp"`
	DailyGoal         *int   `json:"daily_goal" validate:"omitempty,min=10,max=500"`
}

type AchievementsResponse struct {
	Achievements []player.Achievement `json:"achievements"`
	Badges       []player.Badge       `json:"badges"`
}

type ActivityDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	XP    int    `json:"xp"`
}

type DashboardResponse struct {
	Profile           player.Profile `json:"profile"`
	TodayXP           int            `json:"today_xp"`
	DailyGoal         int            `json:"daily_goal"`
	DailyGoalProgress int            `json:"daily_goal_progress"` // percent, capped at 100
	LessonsCompleted  int            `json:"lessons_completed"`
	Activity          []ActivityDay  `json:"activity"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
	IsMe     bool   `json:"is_me"`
}
