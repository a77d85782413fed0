package repository

import (
	"github.com/evandrarf/dsadojo-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ProgressRepository interface {
		// Lesson progress operations
		FindLessonProgress(db *gorm.DB, userID, lessonID string) (*entity.LessonProgress, error)
		FindLessonProgressByUser(db *gorm.DB, userID string) ([]entity.LessonProgress, error)
		SaveLessonProgress(db *gorm.DB, progress *entity.LessonProgress) error

		// Activity operations
		IncrementActivity(db *gorm.DB, userID, day string, xp int) error
		FindActivitySince(db *gorm.DB, userID, fromDay string) ([]entity.ActivityLog, error)

		// Challenge operations
		CreateChallengeCompletion(db *gorm.DB, completion *entity.ChallengeCompletion) (bool, error)
		FindCompletedChallengeIDs(db *gorm.DB, userID string) ([]string, error)
	}

	progressRepository struct {
		db *gorm.DB
	}
)

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Lesson progress operations
func (r *progressRepository) FindLessonProgress(db *gorm.DB, userID, lessonID string) (*entity.LessonProgress, error) {
	if db == nil {
		db = r.db
	}
	var progress entity.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) FindLessonProgressByUser(db *gorm.DB, userID string) ([]entity.LessonProgress, error) {
	if db == nil {
		db = r.db
	}
	var progress []entity.LessonProgress
	err := db.Where("user_id = ?", userID).Order("lesson_id").Find(&progress).Error
	return progress, err
}

func (r *progressRepository) SaveLessonProgress(db *gorm.DB, progress *entity.LessonProgress) error {
	if db == nil {
		db = r.db
	}
	return db.Save(progress).Error
}

// Activity operations
func (r *progressRepository) IncrementActivity(db *gorm.DB, userID, day string, xp int) error {
	if db == nil {
		db = r.db
	}
	row := entity.ActivityLog{UserID: userID, Day: day, Count: 1, XP: xp}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count":      gorm.Expr("activity_logs.count + 1"),
			"xp":         gorm.Expr("activity_logs.xp + ?", xp),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&row).Error
}

func (r *progressRepository) FindActivitySince(db *gorm.DB, userID, fromDay string) ([]entity.ActivityLog, error) {
	if db == nil {
		db = r.db
	}
	var logs []entity.ActivityLog
	err := db.Where("user_id = ? AND day >= ?", userID, fromDay).Order("day ASC").Find(&logs).Error
	return logs, err
}

// Challenge operations

// CreateChallengeCompletion reports false when the challenge was already completed.
func (r *progressRepository) CreateChallengeCompletion(db *gorm.DB, completion *entity.ChallengeCompletion) (bool, error) {
	if db == nil {
		db = r.db
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(completion)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *progressRepository) FindCompletedChallengeIDs(db *gorm.DB, userID string) ([]string, error) {
	if db == nil {
		db = r.db
	}
	var ids []string
	err := db.Model(&entity.ChallengeCompletion{}).Where("user_id = ?", userID).Pluck("challenge_id", &ids).Error
	return ids, err
}
