package usecase

import (
	"context"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/challenge"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ChallengeUsecase interface {
	List(ctx context.Context, userID string, filter challenge.Filter) ([]entity.ChallengeItem, error)
	Link(ctx context.Context, challengeID string) (string, error)
	Complete(ctx context.Context, userID, challengeID string) (*entity.CompleteChallengeResponse, error)
}

type ChallengeConfig struct {
	DB        *gorm.DB
	Catalog   *challenge.Catalog
	Users     repository.UserRepository
	Progress  repository.ProgressRepository
	Publisher events.Publisher
	Log       *logrus.Logger
	Now       func() time.Time
}

type challengeUsecase struct {
	cfg     ChallengeConfig
	rewards rewards
	now     func() time.Time
}

func NewChallengeUsecase(cfg ChallengeConfig) ChallengeUsecase {
	now := nowFunc(cfg.Now)
	return &challengeUsecase{
		cfg: cfg,
		rewards: rewards{
			profiles: profileStore{users: cfg.Users},
			progress: cfg.Progress,
			now:      now,
		},
		now: now,
	}
}

func (u *challengeUsecase) List(ctx context.Context, userID string, filter challenge.Filter) ([]entity.ChallengeItem, error) {
	ids, err := u.cfg.Progress.FindCompletedChallengeIDs(u.cfg.DB, userID)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}

	list := u.cfg.Catalog.List(filter)
	items := make([]entity.ChallengeItem, 0, len(list))
	for _, c := range list {
		items = append(items, entity.ChallengeItem{Challenge: c, IsCompleted: done[c.ID]})
	}
	return items, nil
}

func (u *challengeUsecase) Link(ctx context.Context, challengeID string) (string, error) {
	c, err := u.cfg.Catalog.Get(challengeID)
	if err != nil {
		return "", err
	}
	return c.Link, nil
}

// Complete grants the challenge XP the first time a user completes it.
func (u *challengeUsecase) Complete(ctx context.Context, userID, challengeID string) (*entity.CompleteChallengeResponse, error) {
	c, err := u.cfg.Catalog.Get(challengeID)
	if err != nil {
		return nil, err
	}

	var res *entity.CompleteChallengeResponse
	err = withTx(u.cfg.DB, func(tx *gorm.DB) error {
		created, err := u.cfg.Progress.CreateChallengeCompletion(tx, &internalEntity.ChallengeCompletion{
			UserID:      userID,
			ChallengeID: c.ID,
			XP:          c.XPReward,
			CompletedAt: u.now().UTC(),
		})
		if err != nil {
			return err
		}
		if !created {
			return ErrAlreadyCompleted
		}

		p, _, err := u.rewards.grant(tx, userID, c.XPReward, nil)
		if err != nil {
			return err
		}
		res = &entity.CompleteChallengeResponse{
			ChallengeID: c.ID,
			XPGranted:   c.XPReward,
			TotalXP:     p.XP,
			Level:       p.Level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := events.NewEvent(events.TypeChallengeCompleted, userID, events.ChallengeCompleted{ChallengeID: c.ID, XP: c.XPReward})
	if err := u.cfg.Publisher.Publish(ctx, event); err != nil {
		u.cfg.Log.WithError(err).WithField("challenge_id", c.ID).Warn("failed to publish challenge completion")
	}
	return res, nil
}
