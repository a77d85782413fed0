// Package repotest provides in-memory repositories for tests. They ignore
// the *gorm.DB argument, so usecases run with a nil database.
package repotest

import (
	"sort"
	"sync"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"github.com/evandrarf/dsadojo-be/internal/entity"
	"gorm.io/gorm"
)

type Users struct {
	mu           sync.Mutex
	profiles     map[string]entity.UserProfile
	achievements map[string][]entity.UserAchievement
	sessions     map[string]entity.AuthSession
}

var _ repository.UserRepository = (*Users)(nil)

func NewUsers() *Users {
	return &Users{
		profiles:     map[string]entity.UserProfile{},
		achievements: map[string][]entity.UserAchievement{},
		sessions:     map[string]entity.AuthSession{},
	}
}

func (r *Users) FindByID(_ *gorm.DB, id string) (*entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *Users) FindByIDForUpdate(db *gorm.DB, id string) (*entity.UserProfile, error) {
	return r.FindByID(db, id)
}

func (r *Users) Create(_ *gorm.DB, profile *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *Users) Save(_ *gorm.DB, profile *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *Users) FindTopByXP(_ *gorm.DB, limit int) ([]entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.XP != b.XP {
			return a.XP > b.XP
		}
		if a.Streak != b.Streak {
			return a.Streak > b.Streak
		}
		return a.Username < b.Username
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Users) FindAchievements(_ *gorm.DB, userID string) ([]entity.UserAchievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.UserAchievement(nil), r.achievements[userID]...), nil
}

func (r *Users) CreateAchievement(_ *gorm.DB, a *entity.UserAchievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, have := range r.achievements[a.UserID] {
		if have.AchievementID == a.AchievementID {
			return nil
		}
	}
	r.achievements[a.UserID] = append(r.achievements[a.UserID], *a)
	return nil
}

func (r *Users) CreateAuthSession(_ *gorm.DB, s *entity.AuthSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.Token] = *s
	return nil
}

func (r *Users) FindAuthSession(_ *gorm.DB, token string) (*entity.AuthSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *Users) DeleteAuthSession(_ *gorm.DB, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *Users) DeleteExpiredAuthSessions(_ *gorm.DB, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for token, s := range r.sessions {
		if !s.ExpiresAt.After(now) {
			delete(r.sessions, token)
			n++
		}
	}
	return n, nil
}

// SessionCount is the number of stored auth sessions.
func (r *Users) SessionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

type Progress struct {
	mu         sync.Mutex
	lessons    map[string]entity.LessonProgress
	activity   map[string]entity.ActivityLog
	challenges map[string]entity.ChallengeCompletion
}

var _ repository.ProgressRepository = (*Progress)(nil)

func NewProgress() *Progress {
	return &Progress{
		lessons:    map[string]entity.LessonProgress{},
		activity:   map[string]entity.ActivityLog{},
		challenges: map[string]entity.ChallengeCompletion{},
	}
}

func key(a, b string) string { return a + "\x00" + b }

func (r *Progress) FindLessonProgress(_ *gorm.DB, userID, lessonID string) (*entity.LessonProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lp, ok := r.lessons[key(userID, lessonID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &lp, nil
}

func (r *Progress) FindLessonProgressByUser(_ *gorm.DB, userID string) ([]entity.LessonProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.LessonProgress
	for _, lp := range r.lessons {
		if lp.UserID == userID {
			out = append(out, lp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LessonID < out[j].LessonID })
	return out, nil
}

func (r *Progress) SaveLessonProgress(_ *gorm.DB, lp *entity.LessonProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lessons[key(lp.UserID, lp.LessonID)] = *lp
	return nil
}

func (r *Progress) IncrementActivity(_ *gorm.DB, userID, day string, xp int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.activity[key(userID, day)]
	a.UserID, a.Day = userID, day
	a.Count++
	a.XP += xp
	r.activity[key(userID, day)] = a
	return nil
}

func (r *Progress) FindActivitySince(_ *gorm.DB, userID, fromDay string) ([]entity.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ActivityLog
	for _, a := range r.activity {
		if a.UserID == userID && a.Day >= fromDay {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (r *Progress) CreateChallengeCompletion(_ *gorm.DB, c *entity.ChallengeCompletion) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(c.UserID, c.ChallengeID)
	if _, ok := r.challenges[k]; ok {
		return false, nil
	}
	r.challenges[k] = *c
	return true, nil
}

func (r *Progress) FindCompletedChallengeIDs(_ *gorm.DB, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, c := range r.challenges {
		if c.UserID == userID {
			ids = append(ids, c.ChallengeID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type Sessions struct {
	mu       sync.Mutex
	sessions map[string]entity.QuizSession
	messages []entity.TutorMessage
}

var _ repository.QuizSessionRepository = (*Sessions)(nil)

func NewSessions() *Sessions {
	return &Sessions{sessions: map[string]entity.QuizSession{}}
}

func (r *Sessions) Create(_ *gorm.DB, s *entity.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *Sessions) FindByID(_ *gorm.DB, id string) (*entity.QuizSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *Sessions) FindByIDForUpdate(db *gorm.DB, id string) (*entity.QuizSession, error) {
	return r.FindByID(db, id)
}

func (r *Sessions) Save(_ *gorm.DB, s *entity.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *Sessions) CreateTutorMessage(_ *gorm.DB, m *entity.TutorMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uint(len(r.messages) + 1)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, *m)
	return nil
}

// FindTutorMessages returns the latest limit messages, oldest first.
func (r *Sessions) FindTutorMessages(_ *gorm.DB, sessionID string, limit int) ([]entity.TutorMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.TutorMessage
	for _, m := range r.messages {
		if m.QuizSessionID == sessionID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
