package repository

import (
	"time"

	"github.com/evandrarf/dsadojo-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		// Profile operations
		FindByID(db *gorm.DB, id string) (*entity.UserProfile, error)
		FindByIDForUpdate(db *gorm.DB, id string) (*entity.UserProfile, error)
		Create(db *gorm.DB, profile *entity.UserProfile) error
		Save(db *gorm.DB, profile *entity.UserProfile) error
		FindTopByXP(db *gorm.DB, limit int) ([]entity.UserProfile, error)

		// Achievement operations
		FindAchievements(db *gorm.DB, userID string) ([]entity.UserAchievement, error)
		CreateAchievement(db *gorm.DB, achievement *entity.UserAchievement) error

		// Auth session operations
		CreateAuthSession(db *gorm.DB, session *entity.AuthSession) error
		FindAuthSession(db *gorm.DB, token string) (*entity.AuthSession, error)
		DeleteAuthSession(db *gorm.DB, token string) error
		DeleteExpiredAuthSessions(db *gorm.DB, now time.Time) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Profile operations
func (r *userRepository) FindByID(db *gorm.DB, id string) (*entity.UserProfile, error) {
	if db == nil {
		db = r.db
	}
	var profile entity.UserProfile
	if err := db.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) FindByIDForUpdate(db *gorm.DB, id string) (*entity.UserProfile, error) {
	if db == nil {
		db = r.db
	}
	var profile entity.UserProfile
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) Create(db *gorm.DB, profile *entity.UserProfile) error {
	if db == nil {
		db = r.db
	}
	return db.Create(profile).Error
}

func (r *userRepository) Save(db *gorm.DB, profile *entity.UserProfile) error {
	if db == nil {
		db = r.db
	}
	return db.Save(profile).Error
}

func (r *userRepository) FindTopByXP(db *gorm.DB, limit int) ([]entity.UserProfile, error) {
	if db == nil {
		db = r.db
	}
	var profiles []entity.UserProfile
	err := db.Order("xp DESC, streak DESC, username ASC").Limit(limit).Find(&profiles).Error
	return profiles, err
}

// Achievement operations
func (r *userRepository) FindAchievements(db *gorm.DB, userID string) ([]entity.UserAchievement, error) {
	if db == nil {
		db = r.db
	}
	var achievements []entity.UserAchievement
	err := db.Where("user_id = ?", userID).Order("unlocked_at ASC").Find(&achievements).Error
	return achievements, err
}

func (r *userRepository) CreateAchievement(db *gorm.DB, achievement *entity.UserAchievement) error {
	if db == nil {
		db = r.db
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(achievement).Error
}

// Auth session operations
func (r *userRepository) CreateAuthSession(db *gorm.DB, session *entity.AuthSession) error {
	if db == nil {
		db = r.db
	}
	return db.Create(session).Error
}

func (r *userRepository) FindAuthSession(db *gorm.DB, token string) (*entity.AuthSession, error) {
	if db == nil {
		db = r.db
	}
	var session entity.AuthSession
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *userRepository) DeleteAuthSession(db *gorm.DB, token string) error {
	if db == nil {
		db = r.db
	}
	return db.Where("token = ?", token).Delete(&entity.AuthSession{}).Error
}

func (r *userRepository) DeleteExpiredAuthSessions(db *gorm.DB, now time.Time) (int64, error) {
	if db == nil {
		db = r.db
	}
	res := db.Where("expires_at < ?", now).Delete(&entity.AuthSession{})
	return res.RowsAffected, res.Error
}
