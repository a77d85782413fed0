package repository

import (
	"github.com/evandrarf/dsadojo-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	QuizSessionRepository interface {
		// Session operations
		Create(db *gorm.DB, session *entity.QuizSession) error
		FindByID(db *gorm.DB, id string) (*entity.QuizSession, error)
		FindByIDForUpdate(db *gorm.DB, id string) (*entity.QuizSession, error)
		Save(db *gorm.DB, session *entity.QuizSession) error

		// Tutor message operations
		CreateTutorMessage(db *gorm.DB, message *entity.TutorMessage) error
		FindTutorMessages(db *gorm.DB, sessionID string, limit int) ([]entity.TutorMessage, error)
	}

	quizSessionRepository struct {
		db *gorm.DB
	}
)

func NewQuizSessionRepository(db *gorm.DB) QuizSessionRepository {
	return &quizSessionRepository{db: db}
}

// Session operations
func (r *quizSessionRepository) Create(db *gorm.DB, session *entity.QuizSession) error {
	if db == nil {
		db = r.db
	}
	return db.Create(session).Error
}

func (r *quizSessionRepository) FindByID(db *gorm.DB, id string) (*entity.QuizSession, error) {
	if db == nil {
		db = r.db
	}
	var session entity.QuizSession
	if err := db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *quizSessionRepository) FindByIDForUpdate(db *gorm.DB, id string) (*entity.QuizSession, error) {
	if db == nil {
		db = r.db
	}
	var session entity.QuizSession
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *quizSessionRepository) Save(db *gorm.DB, session *entity.QuizSession) error {
	if db == nil {
		db = r.db
	}
	return db.Save(session).Error
}

// Tutor message operations
func (r *quizSessionRepository) CreateTutorMessage(db *gorm.DB, message *entity.TutorMessage) error {
	if db == nil {
		db = r.db
	}
	return db.Create(message).Error
}

// FindTutorMessages returns the latest limit messages, oldest first.
func (r *quizSessionRepository) FindTutorMessages(db *gorm.DB, sessionID string, limit int) ([]entity.TutorMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.TutorMessage
	query := db.Where("quiz_session_id = ?", sessionID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
