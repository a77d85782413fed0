package player

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/lesson"
)

const (
	XPPerLevel     = 300
	MaxHearts      = 10
	DefaultHearts  = 5
	DefaultGoal    = 50
	MaxLessonCrown = 3
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	XPReward    int       `json:"xpReward"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type LanguageProgress struct {
	LessonsCompleted int `json:"lessonsCompleted"`
	TotalXP          int `json:"totalXp"`
	Crowns           int `json:"crowns"`
}

// Profile is the gamified state of a learner. Reducers never mutate the
// receiver; they return an updated copy.
type Profile struct {
	ID                string                               `json:"id"`
	Username          string                               `json:"username"`
	Email             string                               `json:"email"`
	Level             int                                  `json:"level"`
	XP                int                                  `json:"xp"`
	Streak            int                                  `json:"streak"`
	Hearts            int                                  `json:"hearts"`
	Crowns            int                                  `json:"crowns"`
	IsPro             bool                                 `json:"isPro"`
	DailyGoal         int                                  `json:"dailyGoal"`
	JoinDate          time.Time                            `json:"joinDate"`
	PreferredLanguage lesson.Language                      `json:"preferredLanguage"`
	Achievements      []Achievement                        `json:"achievements"`
	LanguageProgress  map[lesson.Language]LanguageProgress `json:"languageProgress"`
}

func NewProfile(id, username, email string, joined time.Time) Profile {
	return Profile{
		ID:                id,
		Username:          username,
		Email:             email,
		Level:             1,
		Hearts:            DefaultHearts,
		DailyGoal:         DefaultGoal,
		JoinDate:          joined,
		PreferredLanguage: lesson.LanguagePython,
		Achievements:      []Achievement{},
		LanguageProgress:  map[lesson.Language]LanguageProgress{},
	}
}

func (p Profile) clone() Profile {
	p.Achievements = slices.Clone(p.Achievements)
	p.LanguageProgress = maps.Clone(p.LanguageProgress)
	if p.LanguageProgress == nil {
		p.LanguageProgress = map[lesson.Language]LanguageProgress{}
	}
	return p
}

func LevelFor(xp int) int { return xp/XPPerLevel + 1 }

func (p Profile) AddXP(n int) Profile {
	p = p.clone()
	p.XP += n
	p.Level = LevelFor(p.XP)
	return p
}

// UseHeart spends one heart. It reports false and leaves the profile
// unchanged when no hearts are left.
func (p Profile) UseHeart() (Profile, bool) {
	if p.Hearts <= 0 {
		return p, false
	}
	p = p.clone()
	p.Hearts--
	return p, true
}

func (p Profile) AddHeart() Profile {
	p = p.clone()
	if p.Hearts < MaxHearts {
		p.Hearts++
	}
	return p
}

func (p Profile) IncrementStreak() Profile {
	p = p.clone()
	p.Streak++
	return p
}

func (p Profile) HasAchievement(id string) bool {
	return slices.ContainsFunc(p.Achievements, func(a Achievement) bool { return a.ID == id })
}

// AddAchievement unlocks a and grants its XP. Already unlocked achievements
// are ignored.
func (p Profile) AddAchievement(a Achievement) Profile {
	if p.HasAchievement(a.ID) {
		return p
	}
	p = p.clone()
	p.Achievements = append(p.Achievements, a)
	return p.AddXP(a.XPReward)
}

// Unlocked lists the achievements of after that p does not hold.
func (p Profile) Unlocked(after Profile) []Achievement {
	var out []Achievement
	for _, a := range after.Achievements {
		if !p.HasAchievement(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

func (p Profile) SetPreferredLanguage(l lesson.Language) (Profile, error) {
	if !l.Valid() {
		return p, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, l)
	}
	p = p.clone()
	p.PreferredLanguage = l
	return p, nil
}

// RecordLessonCompletion books a finished lesson against the per-language
// progress. The first completion of a lesson also earns a crown.
func (p Profile) RecordLessonCompletion(l lesson.Language, xp int, firstTime bool) Profile {
	p = p.clone()
	lp := p.LanguageProgress[l]
	lp.LessonsCompleted++
	lp.TotalXP += xp
	if firstTime {
		lp.Crowns++
		p.Crowns++
	}
	p.LanguageProgress[l] = lp
	return p
}
