package entity

import "github.com/evandrarf/dsadojo-be/internal/lesson"

// LessonSummary - a lesson without its questions
type LessonSummary struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Type          string            `json:"type"`
	Difficulty    lesson.Difficulty `json:"difficulty"`
	Tier          string            `json:"tier"`
	XPReward      int               `json:"xpReward"`
	Language      lesson.Language   `json:"language"`
	Unit          string            `json:"unit"`
	Explanation   string            `json:"explanation"`
	CodeExample   string            `json:"codeExample"`
	QuestionCount int               `json:"questionCount"`
	IsCompleted   bool              `json:"isCompleted"`
	CrownLevel    int               `json:"crownLevel"`
}

type CategoryResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Icon               string          `json:"icon"`
	Color              string          `json:"color"`
	TotalQuestions     int             `json:"totalQuestions"`
	CompletedQuestions int             `json:"completedQuestions"`
	IsComingSoon       bool            `json:"isComingSoon"`
	Lessons            []LessonSummary `json:"lessons"`
}

// LessonState - per-user progress of one lesson
type LessonState struct {
	Completed  bool
	CrownLevel int
}

func NewLessonSummary(l lesson.Lesson, state LessonState) LessonSummary {
	return LessonSummary{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Type:          l.Type,
		Difficulty:    l.Difficulty,
		Tier:          l.Tier,
		XPReward:      l.XPReward,
		Language:      l.Language,
		Unit:          l.Unit,
		Explanation:   l.Explanation,
		CodeExample:   l.CodeExample,
		QuestionCount: len(l.Questions),
		IsCompleted:   state.Completed,
		CrownLevel:    state.CrownLevel,
	}
}

func NewCategoryResponse(c lesson.Category, states map[string]LessonState) CategoryResponse {
	res := CategoryResponse{
		ID:                 c.ID,
		Title:              c.Title,
		Icon:               c.Icon,
		Color:              c.Color,
		TotalQuestions:     c.TotalQuestions,
		CompletedQuestions: c.CompletedQuestions,
		IsComingSoon:       c.ComingSoon,
		Lessons:            make([]LessonSummary, 0, len(c.Lessons)),
	}
	for _, l := range c.Lessons {
		res.Lessons = append(res.Lessons, NewLessonSummary(l, states[l.ID]))
	}
	return res
}
