package domain

var (
	CHALLENGE_LIST_SUCCESS     = "Successfully retrieved challenges"
	CHALLENGE_LIST_FAILED      = "Failed to retrieve challenges"
	CHALLENGE_OPEN_FAILED      = "Failed to open challenge"
	CHALLENGE_COMPLETE_SUCCESS = "Challenge completed"
	CHALLENGE_COMPLETE_FAILED  = "Failed to complete challenge"
)
