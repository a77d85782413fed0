package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/pkg/mapper"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized       = errors.New("invalid or expired session")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrQuizNotFound       = errors.New("quiz session not found")
	ErrNoHearts           = errors.New("no hearts left")
	ErrExplainBeforeCheck = errors.New("check an answer before asking for an explanation")
	ErrAlreadyCompleted   = errors.New("challenge already completed")
)

const dayLayout = "2006-01-02"

// withTx runs fn in a transaction. Without a database fn gets a nil handle
// and repositories fall back to their own.
func withTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}

func nowFunc(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

// profileStore loads and saves player profiles with their achievements.
type profileStore struct {
	users repository.UserRepository
}

func (s profileStore) load(tx *gorm.DB, userID string, forUpdate bool) (player.Profile, error) {
	var (
		row *entity.UserProfile
		err error
	)
	if forUpdate {
		row, err = s.users.FindByIDForUpdate(tx, userID)
	} else {
		row, err = s.users.FindByID(tx, userID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return player.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return player.Profile{}, err
	}

	achievements, err := s.users.FindAchievements(tx, userID)
	if err != nil {
		return player.Profile{}, err
	}
	return mapper.ConvertToProfile(row, achievements)
}

// save writes after and the achievements it gained over before.
func (s profileStore) save(tx *gorm.DB, before, after player.Profile) error {
	row, err := mapper.ConvertToProfileEntity(after)
	if err != nil {
		return err
	}
	if err := s.users.Save(tx, row); err != nil {
		return err
	}
	for _, a := range before.Unlocked(after) {
		if err := s.users.CreateAchievement(tx, mapper.ConvertToAchievementEntity(after.ID, a)); err != nil {
			return err
		}
	}
	return nil
}

// announceAchievements publishes one event per unlocked achievement. It runs
// after commit; a nil publisher drops the events.
func announceAchievements(ctx context.Context, pub events.Publisher, log *logrus.Logger, userID string, unlocked []player.Achievement) {
	if pub == nil {
		return
	}
	for _, a := range unlocked {
		event := events.NewEvent(events.TypeAchievementUnlocked, userID, events.AchievementUnlocked{
			AchievementID: a.ID,
			Title:         a.Title,
			XP:            a.XPReward,
		})
		if err := pub.Publish(ctx, event); err != nil {
			log.WithError(err).WithField("achievement_id", a.ID).Warn("failed to publish achievement unlock")
		}
	}
}
