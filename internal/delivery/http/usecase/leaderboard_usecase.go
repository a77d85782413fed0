package usecase

import (
	"context"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"gorm.io/gorm"
)

const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)

type LeaderboardUsecase interface {
	Top(ctx context.Context, userID string, limit int) ([]entity.LeaderboardEntry, error)
}

type LeaderboardConfig struct {
	DB    *gorm.DB
	Users repository.UserRepository
}

type leaderboardUsecase struct {
	cfg LeaderboardConfig
}

func NewLeaderboardUsecase(cfg LeaderboardConfig) LeaderboardUsecase {
	return &leaderboardUsecase{cfg: cfg}
}

func (u *leaderboardUsecase) Top(ctx context.Context, userID string, limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}

	rows, err := u.cfg.Users.FindTopByXP(u.cfg.DB, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, entity.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   r.ID,
			Username: r.Username,
			XP:       r.XP,
			Level:    r.Level,
			Streak:   r.Streak,
			IsMe:     r.ID == userID,
		})
	}
	return entries, nil
}
