package domain

var (
	USER_GET_PROFILE_SUCCESS        = "Successfully retrieved profile"
	USER_GET_PROFILE_FAILED         = "Failed to retrieve profile"
	USER_UPDATE_PREFERENCES_SUCCESS = "Preferences updated"
	USER_UPDATE_PREFERENCES_FAILED  = "Failed to update preferences"
	USER_USE_HEART_SUCCESS          = "Heart used"
	USER_USE_HEART_FAILED           = "Failed to use heart"
	USER_ADD_HEART_SUCCESS          = "Heart added"
	USER_ADD_HEART_FAILED           = "Failed to add heart"
	USER_STREAK_SUCCESS             = "Streak incremented"
	USER_STREAK_FAILED              = "Failed to increment streak"
	USER_ACHIEVEMENTS_SUCCESS       = "Successfully retrieved achievements"
	USER_ACHIEVEMENTS_FAILED        = "Failed to retrieve achievements"
	USER_DASHBOARD_SUCCESS          = "Successfully retrieved dashboard"
	USER_DASHBOARD_FAILED           = "Failed to retrieve dashboard"
	LEADERBOARD_GET_SUCCESS         = "Successfully retrieved leaderboard"
	LEADERBOARD_GET_FAILED          = "Failed to retrieve leaderboard"
)
