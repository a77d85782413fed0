package repository

import (
	"github.com/evandrarf/dsadojo-be/internal/entity"
	"gorm.io/gorm"
)

type (
	QuestionRepository interface {
		FindAll(db *gorm.DB) ([]entity.Question, error)
		Count(db *gorm.DB) (int64, error)
	}

	questionRepository struct {
		db *gorm.DB
	}
)

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindAll(db *gorm.DB) ([]entity.Question, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.Question
	err := db.Order("position, id").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Count(db *gorm.DB) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}
