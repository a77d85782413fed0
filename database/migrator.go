package database

import (
	"github.com/evandrarf/dsadojo-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Question{},
		&entity.UserProfile{},
		&entity.UserAchievement{},
		&entity.AuthSession{},
		&entity.LessonProgress{},
		&entity.ActivityLog{},
		&entity.ChallengeCompletion{},
		&entity.QuizSession{},
		&entity.TutorMessage{},
	)
	return err
}
