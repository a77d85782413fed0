package entity

import "github.com/evandrarf/dsadojo-be/internal/quiz"

type StartQuizRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	LessonID   string `json:"lesson_id" validate:"required"`
}

// AnswerRequest - exactly one of choice, text, order or moves is used,
// depending on the question type
type AnswerRequest struct {
	Choice *int        `json:"choice" validate:"omitempty,min=0"`
	Text   string      `json:"text" validate:"omitempty,max=500"`
	Order  []int       `json:"order" validate:"omitempty,dive,min=0"`
	Moves  []quiz.Move `json:"moves"`
}

func (r AnswerRequest) Submission() quiz.Submission {
	return quiz.Submission{Choice: r.Choice, Text: r.Text, Order: r.Order, Moves: r.Moves}
}

type QuizSessionResponse struct {
	SessionID  string    `json:"session_id"`
	CategoryID string    `json:"category_id"`
	View       quiz.View `json:"view"`
	HeartsLeft *int      `json:"hearts_left,omitempty"`
}

type ExplainRequest struct {
	Message string `json:"message" validate:"omitempty,max=1000"`
}

type ExplainResponse struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	Response   string `json:"response"`
	Source     string `json:"source"` // llm provider name or "static"
}

type TutorHistoryItem struct {
	Role       string `json:"role"`
	Message    string `json:"message"`
	QuestionID string `json:"question_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}
