package domain

var (
	QUIZ_START_SUCCESS         = "Quiz session started"
	QUIZ_START_FAILED          = "Failed to start quiz session"
	QUIZ_GET_SESSION_SUCCESS   = "Successfully retrieved quiz session"
	QUIZ_GET_SESSION_FAILED    = "Failed to retrieve quiz session"
	QUIZ_ANSWER_SUCCESS        = "Answer checked"
	QUIZ_ANSWER_FAILED         = "Failed to check answer"
	QUIZ_RETRY_SUCCESS         = "Question reopened"
	QUIZ_RETRY_FAILED          = "Failed to retry question"
	QUIZ_NEXT_SUCCESS          = "Moved to the next step"
	QUIZ_NEXT_FAILED           = "Failed to continue"
	QUIZ_EXPLAIN_SUCCESS       = "Explanation generated"
	QUIZ_EXPLAIN_FAILED        = "Failed to explain question"
	QUIZ_TUTOR_HISTORY_SUCCESS = "Successfully retrieved tutor history"
	QUIZ_TUTOR_HISTORY_FAILED  = "Failed to retrieve tutor history"
)
