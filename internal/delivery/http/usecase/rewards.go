package usecase

import (
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"gorm.io/gorm"
)

// rewards books XP against a profile and the activity calendar.
type rewards struct {
	profiles profileStore
	progress repository.ProgressRepository
	now      func() time.Time
}

// grant adds xp, applies extra and records the XP delta as one activity of
// today. extra may be nil. It returns the updated profile and the
// achievements it unlocked.
func (r rewards) grant(tx *gorm.DB, userID string, xp int, extra func(p player.Profile) player.Profile) (player.Profile, []player.Achievement, error) {
	before, err := r.profiles.load(tx, userID, true)
	if err != nil {
		return player.Profile{}, nil, err
	}

	after := before.AddXP(xp)
	if extra != nil {
		after = extra(after)
	}
	if err := r.profiles.save(tx, before, after); err != nil {
		return player.Profile{}, nil, err
	}

	day := r.now().UTC().Format(dayLayout)
	if err := r.progress.IncrementActivity(tx, userID, day, after.XP-before.XP); err != nil {
		return player.Profile{}, nil, err
	}
	return after, before.Unlocked(after), nil
}
