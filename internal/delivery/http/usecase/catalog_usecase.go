package usecase

import (
	"context"
	"fmt"

	"github.com/evandrarf/dsadojo-be/internal/delivery/http/entity"
	"github.com/evandrarf/dsadojo-be/internal/delivery/http/repository"
	"github.com/evandrarf/dsadojo-be/internal/lesson"
	"github.com/evandrarf/dsadojo-be/internal/pkg/mapper"
	"github.com/evandrarf/dsadojo-be/internal/player"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CatalogUsecase interface {
	Categories(ctx context.Context, userID string, language string) ([]entity.CategoryResponse, error)
	Category(ctx context.Context, userID, categoryID, language string) (*entity.CategoryResponse, error)
	Lesson(ctx context.Context, userID, categoryID, lessonID string) (*entity.LessonSummary, error)
}

type CatalogConfig struct {
	DB       *gorm.DB
	Catalog  *lesson.Catalog
	Users    repository.UserRepository
	Progress repository.ProgressRepository
	Log      *logrus.Logger
}

type catalogUsecase struct {
	cfg      CatalogConfig
	profiles profileStore
}

func NewCatalogUsecase(cfg CatalogConfig) CatalogUsecase {
	return &catalogUsecase{cfg: cfg, profiles: profileStore{users: cfg.Users}}
}

// LoadCatalog synthesizes lessons from the questions table. An empty table
// falls back to the embedded bank.
func LoadCatalog(db *gorm.DB, questions repository.QuestionRepository, fallback *lesson.Bank, log *logrus.Logger) (*lesson.Catalog, error) {
	rows, err := questions.FindAll(db)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(rows) == 0 {
		log.Warn("questions table is empty, serving the embedded bank")
		return fallback.Catalog()
	}

	bank, err := mapper.ConvertToBank(rows)
	if err != nil {
		return nil, err
	}
	catalog, err := bank.Catalog()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"lessons":   len(catalog.Lessons),
		"questions": catalog.QuestionCount(),
	}).Info("catalog loaded from database")
	return catalog, nil
}

// preference resolves the language filter. An explicit query value wins over
// the profile setting.
func (u *catalogUsecase) preference(userID, language string) (lesson.Language, error) {
	if language != "" {
		l := lesson.Language(language)
		if !l.Valid() {
			return "", fmt.Errorf("%w: %q", player.ErrUnsupportedLanguage, language)
		}
		return l, nil
	}
	p, err := u.profiles.load(u.cfg.DB, userID, false)
	if err != nil {
		return "", err
	}
	return p.PreferredLanguage, nil
}

func (u *catalogUsecase) lessonStates(userID string) (map[string]entity.LessonState, map[string]bool, error) {
	rows, err := u.cfg.Progress.FindLessonProgressByUser(u.cfg.DB, userID)
	if err != nil {
		return nil, nil, err
	}
	states := make(map[string]entity.LessonState, len(rows))
	completed := make(map[string]bool, len(rows))
	for _, r := range rows {
		states[r.LessonID] = entity.LessonState{Completed: r.Completed, CrownLevel: r.CrownLevel}
		if r.Completed {
			completed[r.LessonID] = true
		}
	}
	return states, completed, nil
}

func (u *catalogUsecase) Categories(ctx context.Context, userID string, language string) ([]entity.CategoryResponse, error) {
	pref, err := u.preference(userID, language)
	if err != nil {
		return nil, err
	}
	states, completed, err := u.lessonStates(userID)
	if err != nil {
		return nil, err
	}

	categories := u.cfg.Catalog.Aggregate(pref, completed)
	res := make([]entity.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, entity.NewCategoryResponse(c, states))
	}
	return res, nil
}

func (u *catalogUsecase) Category(ctx context.Context, userID, categoryID, language string) (*entity.CategoryResponse, error) {
	pref, err := u.preference(userID, language)
	if err != nil {
		return nil, err
	}
	states, completed, err := u.lessonStates(userID)
	if err != nil {
		return nil, err
	}

	c, err := u.cfg.Catalog.Category(categoryID, pref, completed)
	if err != nil {
		return nil, err
	}
	res := entity.NewCategoryResponse(c, states)
	return &res, nil
}

func (u *catalogUsecase) Lesson(ctx context.Context, userID, categoryID, lessonID string) (*entity.LessonSummary, error) {
	pref, err := u.preference(userID, "")
	if err != nil {
		return nil, err
	}
	l, err := u.cfg.Catalog.Lesson(categoryID, lessonID, pref)
	if err != nil {
		return nil, err
	}
	states, _, err := u.lessonStates(userID)
	if err != nil {
		return nil, err
	}
	res := entity.NewLessonSummary(l, states[l.ID])
	return &res, nil
}
