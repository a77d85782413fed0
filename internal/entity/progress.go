package entity

import (
	"time"

	"gorm.io/datatypes"
)

// LessonProgress - completion state per (user, lesson)
type LessonProgress struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	UserID          string     `gorm:"uniqueIndex:idx_user_lesson;size:100;not null" json:"user_id"`
	LessonID        string     `gorm:"uniqueIndex:idx_user_lesson;size:100;not null" json:"lesson_id"`
	CategoryID      string     `gorm:"size:50;not null;index" json:"category_id"`
	Language        string     `gorm:"size:20;not null" json:"language"`
	Completed       bool       `gorm:"not null;default:false" json:"completed"`
	CrownLevel      int        `gorm:"not null;default:0" json:"crown_level"`
	Completions     int        `gorm:"not null;default:0" json:"completions"`
	BestMistakes    int        `gorm:"not null;default:0" json:"best_mistakes"`
	LastCompletedAt *time.Time `json:"last_completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// ActivityLog - completions and XP per user per day
type ActivityLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_user_day;size:100;not null" json:"user_id"`
	Day       string    `gorm:"uniqueIndex:idx_user_day;size:10;not null" json:"day"` // 2006-01-02
	Count     int       `gorm:"not null;default:0" json:"count"`
	XP        int       `gorm:"not null;default:0" json:"xp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ChallengeCompletion - a challenge is rewarded once per user
type ChallengeCompletion struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      string    `gorm:"uniqueIndex:idx_user_challenge;size:100;not null" json:"user_id"`
	ChallengeID string    `gorm:"uniqueIndex:idx_user_challenge;size:20;not null" json:"challenge_id"`
	XP          int       `gorm:"not null" json:"xp"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

func (ChallengeCompletion) TableName() string {
	return "challenge_completions"
}

// QuizSession - persisted quiz state machine
type QuizSession struct {
	ID         string         `gorm:"primarykey;size:36" json:"id"`
	UserID     string         `gorm:"size:100;not null;index" json:"user_id"`
	CategoryID string         `gorm:"size:50;not null" json:"category_id"`
	LessonID   string         `gorm:"size:100;not null" json:"lesson_id"`
	Language   string         `gorm:"size:20;not null" json:"language"`
	State      datatypes.JSON `gorm:"not null" json:"state"`
	Status     string         `gorm:"size:20;not null;index" json:"status"` // answering, checked, completed
	Rewarded   bool           `gorm:"not null;default:false" json:"rewarded"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

// TutorMessage - tutor conversation per quiz session
type TutorMessage struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	QuizSessionID string    `gorm:"size:36;not null;index" json:"quiz_session_id"`
	QuestionID    string    `gorm:"size:100" json:"question_id"`
	Role          string    `gorm:"size:20;not null" json:"role"` // user, assistant
	Message       string    `gorm:"type:text;not null" json:"message"`
	Provider      string    `gorm:"size:20" json:"provider"` // openai, gemini, static
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TutorMessage) TableName() string {
	return "tutor_messages"
}
