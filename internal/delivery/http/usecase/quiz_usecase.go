package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/dsadojo-be/internal/entity"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/events"
	"github.com/evandrarf/dsadojo-be/internal/pkg/llm"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/evandrarf/dsadojo-be/internal/quiz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TutorSourceStatic   = "static"
	tutorHistoryContext = 10
	tutorHistoryLimit   = 50
	defaultTutorPrompt  = "Explain why the correct answer is right."
)

type QuizUsecase interface {
	Start(ctx context.Context, userID string, req entity.StartQuizRequest) (*entity.QuizSessionResponse, error)
	Get(ctx context.Context, userID, sessionID string) (*entity.QuizSessionResponse, error)
	Answer(ctx context.Context, userID, sessionID string, sub quiz.Submission) (*entity.QuizSessionResponse, error)
	Retry(ctx context.Context, userID, sessionID string) (*entity.QuizSessionResponse, error)
	Next(ctx context.Context, userID, sessionID string) (*entity.QuizSessionResponse, error)
	Explain(ctx context.Context, userID, sessionID, message string) (*entity.ExplainResponse, error)
	TutorHistory(ctx context.Context, userID, sessionID string) ([]entity.TutorHistoryItem, error)
}

type QuizConfig struct {
	DB             *gorm.DB
	Catalog        *lesson.Catalog
	Sessions       repository.QuizSessionRepository
	Users          repository.UserRepository
	Progress       repository.ProgressRepository
	Tutor          llm.Provider // nil disables the LLM tutor
	ExplainTimeout time.Duration
	Publisher      events.Publisher
	Picker         quiz.CuePicker
	Log            *logrus.Logger
	Now            func() time.Time
}

type quizUsecase struct {
	cfg      QuizConfig
	profiles profileStore
	rewards  rewards
	now      func() time.Time
}

func NewQuizUsecase(cfg QuizConfig) QuizUsecase {
	if cfg.ExplainTimeout <= 0 {
		cfg.ExplainTimeout = 20 * time.Second
	}
	now := nowFunc(cfg.Now)
	profiles := profileStore{users: cfg.Users}
	return &quizUsecase{
		cfg:      cfg,
		profiles: profiles,
		rewards:  rewards{profiles: profiles, progress: cfg.Progress, now: now},
		now:      now,
	}
}

func (u *quizUsecase) response(row *internalEntity.QuizSession, sess *quiz.Session) *entity.QuizSessionResponse {
	return &entity.QuizSessionResponse{
		SessionID:  row.ID,
		CategoryID: row.CategoryID,
		View:       sess.View(),
	}
}

func (u *quizUsecase) encode(row *internalEntity.QuizSession, sess *quiz.Session) error {
	state, err := json.Marshal(sess.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode quiz state: %w", err)
	}
	row.State = datatypes.JSON(state)
	row.Status = string(sess.State())
	return nil
}

// open loads a session owned by userID and rebuilds its state machine.
func (u *quizUsecase) open(tx *gorm.DB, userID, sessionID string, forUpdate bool) (*internalEntity.QuizSession, *quiz.Session, error) {
	var (
		row *internalEntity.QuizSession
		err error
	)
	if forUpdate {
		row, err = u.cfg.Sessions.FindByIDForUpdate(tx, sessionID)
	} else {
		row, err = u.cfg.Sessions.FindByID(tx, sessionID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && row.UserID != userID) {
		return nil, nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	l, err := u.cfg.Catalog.Lesson(row.CategoryID, row.LessonID, lesson.Language(row.Language))
	if err != nil {
		return nil, nil, err
	}
	var snap quiz.Snapshot
	if err := json.Unmarshal(row.State, &snap); err != nil {
		return nil, nil, fmt.Errorf("failed to decode quiz state: %w", err)
	}
	sess, err := quiz.Resume(l, snap, u.cfg.Picker)
	if err != nil {
		return nil, nil, err
	}
	return row, sess, nil
}

func (u *quizUsecase) Start(ctx context.Context, userID string, req entity.StartQuizRequest) (*entity.QuizSessionResponse, error) {
	p, err := u.profiles.load(u.cfg.DB, userID, false)
	if err != nil {
		return nil, err
	}
	l, err := u.cfg.Catalog.Lesson(req.CategoryID, req.LessonID, p.PreferredLanguage)
	if err != nil {
		return nil, err
	}
	sess, err := quiz.New(l, u.cfg.Picker)
	if err != nil {
		return nil, err
	}

	row := &internalEntity.QuizSession{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: req.CategoryID,
		LessonID:   l.ID,
		Language:   string(l.Language),
	}
	if err := u.encode(row, sess); err != nil {
		return nil, err
	}
	if err := u.cfg.Sessions.Create(u.cfg.DB, row); err != nil {
		return nil, err
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"user_id":    userID,
		"session_id": row.ID,
		"lesson_id":  l.ID,
	}).Info("quiz session started")
	return u.response(row, sess), nil
}

func (u *quizUsecase) Get(ctx context.Context, userID, sessionID string) (*entity.QuizSessionResponse, error) {
	row, sess, err := u.open(u.cfg.DB, userID, sessionID, false)
	if err != nil {
		return nil, err
	}
	return u.response(row, sess), nil
}

// Answer checks the submission. An incorrect answer spends a heart when the
// learner has one left; an empty heart bar does not block answering.
func (u *quizUsecase) Answer(ctx context.Context, userID, sessionID string, sub quiz.Submission) (*entity.QuizSessionResponse, error) {
	var res *entity.QuizSessionResponse
	err := withTx(u.cfg.DB, func(tx *gorm.DB) error {
		row, sess, err := u.open(tx, userID, sessionID, true)
		if err != nil {
			return err
		}
		check, err := sess.Submit(sub)
		if err != nil {
			return err
		}

		var hearts *int
		if check.HeartSpent {
			before, err := u.profiles.load(tx, userID, true)
			if err != nil {
				return err
			}
			after, ok := before.UseHeart()
			if ok {
				if err := u.profiles.save(tx, before, after); err != nil {
					return err
				}
			}
			hearts = &after.Hearts
		}

		if err := u.encode(row, sess); err != nil {
			return err
		}
		if err := u.cfg.Sessions.Save(tx, row); err != nil {
			return err
		}
		res = u.response(row, sess)
		res.HeartsLeft = hearts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (u *quizUsecase) Retry(ctx context.Context, userID, sessionID string) (*entity.QuizSessionResponse, error) {
	var res *entity.QuizSessionResponse
	err := withTx(u.cfg.DB, func(tx *gorm.DB) error {
		row, sess, err := u.open(tx, userID, sessionID, true)
		if err != nil {
			return err
		}
		if err := sess.Retry(); err != nil {
			return err
		}
		if err := u.encode(row, sess); err != nil {
			return err
		}
		if err := u.cfg.Sessions.Save(tx, row); err != nil {
			return err
		}
		res = u.response(row, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Next advances the session. The completion rewards are booked in the same
// transaction as the state change, at most once per session.
func (u *quizUsecase) Next(ctx context.Context, userID, sessionID string) (*entity.QuizSessionResponse, error) {
	var (
		res       *entity.QuizSessionResponse
		completed *events.LessonCompleted
		unlocked  []player.Achievement
	)
	err := withTx(u.cfg.DB, func(tx *gorm.DB) error {
		row, sess, err := u.open(tx, userID, sessionID, true)
		if err != nil {
			return err
		}
		result, err := sess.Next()
		if err != nil {
			return err
		}

		if result != nil && !row.Rewarded {
			firstTime, gained, err := u.completeLesson(tx, row, result)
			if err != nil {
				return err
			}
			unlocked = gained
			row.Rewarded = true
			completed = &events.LessonCompleted{
				LessonID:   row.LessonID,
				CategoryID: row.CategoryID,
				Language:   row.Language,
				XP:         result.XP,
				Mistakes:   result.Mistakes,
				FirstTime:  firstTime,
			}
		}

		if err := u.encode(row, sess); err != nil {
			return err
		}
		if err := u.cfg.Sessions.Save(tx, row); err != nil {
			return err
		}
		res = u.response(row, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed != nil {
		u.cfg.Log.WithFields(logrus.Fields{
			"user_id":   userID,
			"lesson_id": completed.LessonID,
			"xp":        completed.XP,
			"mistakes":  completed.Mistakes,
		}).Info("lesson completed")
		event := events.NewEvent(events.TypeLessonCompleted, userID, completed)
		if err := u.cfg.Publisher.Publish(ctx, event); err != nil {
			u.cfg.Log.WithError(err).Warn("failed to publish lesson completion")
		}
	}
	announceAchievements(ctx, u.cfg.Publisher, u.cfg.Log, userID, unlocked)
	return res, nil
}

func (u *quizUsecase) completeLesson(tx *gorm.DB, row *internalEntity.QuizSession, result *quiz.Result) (bool, []player.Achievement, error) {
	now := u.now().UTC()

	lp, err := u.cfg.Progress.FindLessonProgress(tx, row.UserID, row.LessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		lp = &internalEntity.LessonProgress{
			UserID:     row.UserID,
			LessonID:   row.LessonID,
			CategoryID: row.CategoryID,
			Language:   row.Language,
		}
	} else if err != nil {
		return false, nil, err
	}

	firstTime := !lp.Completed
	if firstTime || result.Mistakes < lp.BestMistakes {
		lp.BestMistakes = result.Mistakes
	}
	lp.Completed = true
	lp.Completions++
	lp.CrownLevel = min(player.MaxLessonCrown, lp.CrownLevel+1)
	lp.LastCompletedAt = &now
	if err := u.cfg.Progress.SaveLessonProgress(tx, lp); err != nil {
		return false, nil, err
	}

	lang := lesson.Language(row.Language)
	_, unlocked, err := u.rewards.grant(tx, row.UserID, result.XP, func(p player.Profile) player.Profile {
		p = p.RecordLessonCompletion(lang, result.XP, firstTime)
		return p.AddAchievement(player.FirstSteps(now))
	})
	return firstTime, unlocked, err
}

func describeAnswer(q lesson.Question, a lesson.Answer) string {
	switch {
	case a.HasIndex() && *a.Index >= 0 && *a.Index < len(q.Options):
		return q.Options[*a.Index]
	case a.HasOrder():
		items := make([]string, 0, len(a.Order))
		for _, i := range a.Order {
			if i >= 0 && i < len(q.Items) {
				items = append(items, q.Items[i])
			}
		}
		return strings.Join(items, " -> ")
	}
	return a.String()
}

func tutorSystemPrompt(l lesson.Lesson, q lesson.Question, check *quiz.Check) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a patient data structures and algorithms tutor. The learner is working on the lesson %q.\n", l.Title)
	fmt.Fprintf(&b, "Use %s for any code you show. Keep answers short and concrete.\n\n", l.Language.Display())
	fmt.Fprintf(&b, "Question (%s): %s\n", q.Type, q.Prompt)
	if q.Code != "" {
		fmt.Fprintf(&b, "Code:\n%s\n", q.Code)
	}
	for i, o := range q.Options {
		fmt.Fprintf(&b, "Option %d: %s\n", i, o)
	}
	if len(q.Items) > 0 {
		fmt.Fprintf(&b, "Items to order: %s\n", strings.Join(q.Items, ", "))
	}
	result := "incorrect"
	if check.Correct {
		result = "correct"
	}
	fmt.Fprintf(&b, "\nThe learner's answer was %s.\n", result)
	fmt.Fprintf(&b, "Correct answer: %s\n", describeAnswer(q, check.CorrectAnswer))
	fmt.Fprintf(&b, "Reference explanation: %s\n", check.Explanation)
	b.WriteString("Never contradict the correct answer above.")
	return b.String()
}

// Explain asks the tutor about the checked question. Any LLM failure falls
// back to the static explanation of the question.
func (u *quizUsecase) Explain(ctx context.Context, userID, sessionID, message string) (*entity.ExplainResponse, error) {
	_, sess, err := u.open(u.cfg.DB, userID, sessionID, false)
	if err != nil {
		return nil, err
	}
	check := sess.LastCheck()
	if check == nil {
		return nil, ErrExplainBeforeCheck
	}
	q := sess.Current()

	message = strings.TrimSpace(message)
	if message == "" {
		message = defaultTutorPrompt
	}

	reply, source := check.Explanation, TutorSourceStatic
	if reply == "" {
		reply = q.Explanation
	}
	if u.cfg.Tutor != nil {
		history, err := u.cfg.Sessions.FindTutorMessages(u.cfg.DB, sessionID, tutorHistoryContext)
		if err != nil {
			history = nil
		}

		messages := []llm.Message{{Role: llm.RoleSystem, Content: tutorSystemPrompt(sess.Lesson(), q, check)}}
		for _, m := range history {
			role := llm.RoleAssistant
			if m.Role == llm.RoleUser {
				role = llm.RoleUser
			}
			messages = append(messages, llm.Message{Role: role, Content: m.Message})
		}
		messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

		callCtx, cancel := context.WithTimeout(ctx, u.cfg.ExplainTimeout)
		text, err := u.cfg.Tutor.Chat(callCtx, messages)
		cancel()
		if err != nil {
			u.cfg.Log.WithError(err).WithField("provider", u.cfg.Tutor.Name()).Warn("tutor unavailable, using static explanation")
		} else {
			reply, source = text, u.cfg.Tutor.Name()
		}
	}

	for _, m := range []*internalEntity.TutorMessage{
		{QuizSessionID: sessionID, QuestionID: q.ID, Role: llm.RoleUser, Message: message},
		{QuizSessionID: sessionID, QuestionID: q.ID, Role: llm.RoleAssistant, Message: reply, Provider: source},
	} {
		if err := u.cfg.Sessions.CreateTutorMessage(u.cfg.DB, m); err != nil {
			u.cfg.Log.WithError(err).Warn("failed to save tutor message")
		}
	}

	return &entity.ExplainResponse{
		SessionID:  sessionID,
		QuestionID: q.ID,
		Response:   reply,
		Source:     source,
	}, nil
}

func (u *quizUsecase) TutorHistory(ctx context.Context, userID, sessionID string) ([]entity.TutorHistoryItem, error) {
	if _, _, err := u.open(u.cfg.DB, userID, sessionID, false); err != nil {
		return nil, err
	}
	messages, err := u.cfg.Sessions.FindTutorMessages(u.cfg.DB, sessionID, tutorHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor history: %w", err)
	}

	history := make([]entity.TutorHistoryItem, 0, len(messages))
	for _, m := range messages {
		history = append(history, entity.TutorHistoryItem{
			Role:       m.Role,
			Message:    m.Message,
			QuestionID: m.QuestionID,
			CreatedAt:  m.CreatedAt.Format(time.RFC3339),
		})
	}
	return history, nil
}
