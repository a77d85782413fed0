package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/pkg/mapper"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ActivityDays is the length of the dashboard activity calendar.
const ActivityDays = 365

type UserUsecase interface {
	EnsureProfile(ctx context.Context, userID, email, username string) (*player.Profile, error)
	Me(ctx context.Context, userID string) (*player.Profile, error)
	UpdatePreferences(ctx context.Context, userID string, req entity.UpdatePreferencesRequest) (*player.Profile, error)
	UseHeart(ctx context.Context, userID string) (*player.Profile, error)
	AddHeart(ctx context.Context, userID string) (*player.Profile, error)
	IncrementStreak(ctx context.Context, userID string) (*player.Profile, error)
	Achievements(ctx context.Context, userID string) (*entity.AchievementsResponse, error)
	Dashboard(ctx context.Context, userID string) (*entity.DashboardResponse, error)
}

type UserConfig struct {
	DB        *gorm.DB
	Users     repository.UserRepository
	Progress  repository.ProgressRepository
	Publisher events.Publisher
	Log       *logrus.Logger
	Now       func() time.Time
}

type userUsecase struct {
	cfg      UserConfig
	profiles profileStore
	now      func() time.Time
}

func NewUserUsecase(cfg UserConfig) UserUsecase {
	return &userUsecase{cfg: cfg, profiles: profileStore{users: cfg.Users}, now: nowFunc(cfg.Now)}
}

func (u *userUsecase) EnsureProfile(ctx context.Context, userID, email, username string) (*player.Profile, error) {
	p, err := u.profiles.load(u.cfg.DB, userID, false)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}
	p = player.NewProfile(userID, username, email, u.now().UTC())
	row, err := mapper.ConvertToProfileEntity(p)
	if err != nil {
		return nil, err
	}
	if err := u.cfg.Users.Create(u.cfg.DB, row); err != nil {
		return nil, err
	}
	u.cfg.Log.WithField("user_id", userID).Info("profile created")
	return &p, nil
}

func (u *userUsecase) Me(ctx context.Context, userID string) (*player.Profile, error) {
	p, err := u.profiles.load(u.cfg.DB, userID, false)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// update applies fn to the locked profile and saves the result. Achievements
// unlocked by fn are announced after commit.
func (u *userUsecase) update(ctx context.Context, userID string, fn func(p player.Profile) (player.Profile, error)) (*player.Profile, error) {
	var (
		out      player.Profile
		unlocked []player.Achievement
	)
	err := withTx(u.cfg.DB, func(tx *gorm.DB) error {
		before, err := u.profiles.load(tx, userID, true)
		if err != nil {
			return err
		}
		after, err := fn(before)
		if err != nil {
			return err
		}
		if err := u.profiles.save(tx, before, after); err != nil {
			return err
		}
		out = after
		unlocked = before.Unlocked(after)
		return nil
	})
	if err != nil {
		return nil, err
	}
	announceAchievements(ctx, u.cfg.Publisher, u.cfg.Log, userID, unlocked)
	return &out, nil
}

func (u *userUsecase) UpdatePreferences(ctx context.Context, userID string, req entity.UpdatePreferencesRequest) (*player.Profile, error) {
	return u.update(ctx, userID, func(p player.Profile) (player.Profile, error) {
		if req.PreferredLanguage != "" {
			var err error
			if p, err = p.SetPreferredLanguage(lesson.Language(req.PreferredLanguage)); err != nil {
				return p, err
			}
		}
		if req.DailyGoal != nil {
			p.DailyGoal = *req.DailyGoal
		}
		return p, nil
	})
}

func (u *userUsecase) UseHeart(ctx context.Context, userID string) (*player.Profile, error) {
	return u.update(ctx, userID, func(p player.Profile) (player.Profile, error) {
		next, ok := p.UseHeart()
		if !ok {
			return p, ErrNoHearts
		}
		return next, nil
	})
}

func (u *userUsecase) AddHeart(ctx context.Context, userID string) (*player.Profile, error) {
	return u.update(ctx, userID, func(p player.Profile) (player.Profile, error) {
		return p.AddHeart(), nil
	})
}

// IncrementStreak is called by the external streak trigger. A seven day
// streak unlocks Week Warrior.
func (u *userUsecase) IncrementStreak(ctx context.Context, userID string) (*player.Profile, error) {
	return u.update(ctx, userID, func(p player.Profile) (player.Profile, error) {
		p = p.IncrementStreak()
		if p.Streak >= 7 {
			p = p.AddAchievement(player.WeekWarrior(u.now().UTC()))
		}
		return p, nil
	})
}

func (u *userUsecase) Achievements(ctx context.Context, userID string) (*entity.AchievementsResponse, error) {
	p, err := u.profiles.load(u.cfg.DB, userID, false)
	if err != nil {
		return nil, err
	}
	return &entity.AchievementsResponse{
		Achievements: p.Achievements,
		Badges:       player.Badges(p),
	}, nil
}

func (u *userUsecase) Dashboard(ctx context.Context, userID string) (*entity.DashboardResponse, error) {
	p, err := u.profiles.load(u.cfg.DB, userID, false)
	if err != nil {
		return nil, err
	}

	today := u.now().UTC()
	from := today.AddDate(0, 0, -(ActivityDays - 1))
	logs, err := u.cfg.Progress.FindActivitySince(u.cfg.DB, userID, from.Format(dayLayout))
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]entity.ActivityDay, len(logs))
	for _, l := range logs {
		byDay[l.Day] = entity.ActivityDay{Date: l.Day, Count: l.Count, XP: l.XP}
	}

	activity := make([]entity.ActivityDay, 0, ActivityDays)
	for d := 0; d < ActivityDays; d++ {
		day := from.AddDate(0, 0, d).Format(dayLayout)
		a, ok := byDay[day]
		if !ok {
			a = entity.ActivityDay{Date: day}
		}
		activity = append(activity, a)
	}

	progress, err := u.cfg.Progress.FindLessonProgressByUser(u.cfg.DB, userID)
	if err != nil {
		return nil, err
	}
	completed := 0
	for _, lp := range progress {
		if lp.Completed {
			completed++
		}
	}

	todayXP := byDay[today.Format(dayLayout)].XP
	goalProgress := 0
	if p.DailyGoal > 0 {
		goalProgress = min(100, todayXP*100/p.DailyGoal)
	}

	return &entity.DashboardResponse{
		Profile:           p,
		TodayXP:           todayXP,
		DailyGoal:         p.DailyGoal,
		DailyGoalProgress: goalProgress,
		LessonsCompleted:  completed,
		Activity:          activity,
	}, nil
}
