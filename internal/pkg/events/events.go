package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	TypeLessonCompleted     = "lesson.completed"
	TypeChallengeCompleted  = "challenge.completed"
	TypeAchievementUnlocked = "achievement.unlocked"

	DefaultQueue = "dsadojo.events"
)

type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType, userID string, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

type LessonCompleted struct {
	LessonID   string `json:"lesson_id"`
	CategoryID string `json:"category_id"`
	Language   string `json:"language"`
	XP         int    `json:"xp"`
	Mistakes   int    `json:"mistakes"`
	FirstTime  bool   `json:"first_time"`
}

type ChallengeCompleted struct {
	ChallengeID string `json:"challenge_id"`
	XP          int    `json:"xp"`
}

type AchievementUnlocked struct {
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
	XP            int    `json:"xp"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// New returns an AMQP publisher when events.amqp_url is set and a logging
// publisher otherwise.
func New(config *viper.Viper, log *logrus.Logger) (Publisher, error) {
	url := ""
	queue := DefaultQueue
	if config != nil {
		url = config.GetString("events.amqp_url")
		if q := config.GetString("events.queue"); q != "" {
			queue = q
		}
	}
	if url == "" {
		return NewLogPublisher(log), nil
	}
	return NewAMQPPublisher(url, queue, log)
}
